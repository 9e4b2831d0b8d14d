package run

import (
	"time"

	"github.com/John-Robertt/hltb/internal/domain"
)

// Observer 用于把“条目结果”从核心执行流程中解耦出来。
//
// 约束：
// - run 包只负责发事件，不做任何输出（避免污染 stdout 的 JSON 契约）。
// - Observer 的实现必须并发安全：事件可能来自多个 goroutine。
type Observer interface {
	// OnItemDone 在某个 id 处理完成时调用（用于每条结果的一行输出）。
	OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration)
}
