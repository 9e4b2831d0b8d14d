package run

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/John-Robertt/hltb/internal/config"
	"github.com/John-Robertt/hltb/internal/domain"
	"github.com/John-Robertt/hltb/internal/provider"
)

// MaxWorkers 是并发抓取详情页的上限，与配置项 concurrency 的上限一致。
const MaxWorkers = config.MaxConcurrency

// GetMany 并发抓取多个详情页，每个 id 产出一条 ItemResult。
//
// 约束：
// - 重复的 id 只抓一次；结果顺序按完成顺序（调用方用 Report.Finalize 排序）
// - workers 被限制在 [1, min(MaxWorkers, len(ids))]
// - 单个 id 的失败不影响其它 id
func GetMany(ctx context.Context, p provider.Provider, c *http.Client, ids []int, workers int, obs Observer) []domain.ItemResult {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	if workers > len(ids) {
		workers = len(ids)
	}
	if workers < 1 {
		workers = 1
	}

	type execResult struct {
		res domain.ItemResult
		dur time.Duration
	}

	jobs := make(chan int)
	results := make(chan execResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				oneStarted := time.Now()
				r := getOne(ctx, p, c, id)
				results <- execResult{res: r, dur: time.Since(oneStarted)}
			}
		}()
	}

	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	out := make([]domain.ItemResult, 0, len(ids))
	done := 0
	for it := range results {
		done++
		out = append(out, it.res)
		if obs != nil {
			obs.OnItemDone(done, len(ids), it.res, it.dur)
		}
	}
	return out
}

func getOne(ctx context.Context, p provider.Provider, c *http.Client, id int) domain.ItemResult {
	item := domain.ItemResult{ID: id}

	d, ok, err := provider.Get(ctx, p, id, c)
	switch {
	case err != nil:
		fillProviderError(&item, err)
	case !ok:
		item.Status = domain.StatusNotFound
	default:
		item.Status = domain.StatusFound
		item.Game = &d
	}
	return item
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func fillProviderError(item *domain.ItemResult, err error) {
	item.Status = domain.StatusFailed
	item.ErrorCode = domain.ErrCodeFetchFailed

	var pe *provider.Error
	if errors.As(err, &pe) {
		item.ErrorMsg = HumanizeFetchError(pe.Provider, pe.Err)
		return
	}
	item.ErrorMsg = err.Error()
}

// HumanizeFetchError 把抓取错误翻译为带处理建议的一行中文提示；有 request id 时总是附上。
func HumanizeFetchError(providerName string, err error) string {
	if err == nil {
		return providerName + " 抓取失败"
	}

	suffix := ""
	if id := provider.RequestID(err); id != "" {
		suffix = "（request_id=" + id + "）"
	}

	// HTTP 非 2xx：尽量给出可操作提示（反爬/限流是最常见问题）。
	var hs *provider.HTTPStatusError
	if errors.As(err, &hs) {
		switch hs.StatusCode {
		case 403, 429:
			return fmt.Sprintf("%s 返回 HTTP %d（可能触发反爬/限流）。建议降低并发或配置 proxy.url。%s", providerName, hs.StatusCode, suffix)
		default:
			return fmt.Sprintf("%s 返回 HTTP %d。%s", providerName, hs.StatusCode, suffix)
		}
	}

	cause := err
	var re *provider.RequestError
	if errors.As(err, &re) && re.Err != nil {
		cause = re.Err
	}

	low := strings.ToLower(cause.Error())
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(low, "timeout") {
		return fmt.Sprintf("%s 抓取超时。建议检查网络/代理，或调大 timeout 后重试。%s", providerName, suffix)
	}
	if strings.Contains(low, "tls") || strings.Contains(low, "handshake") || strings.Contains(low, "ssl") {
		return fmt.Sprintf("%s 连接失败（TLS/SSL）。可在 hltb.yaml 设置 base_url 指向可用域名，或配置 proxy.url。%s", providerName, suffix)
	}

	return fmt.Sprintf("%s 抓取失败：%v%s", providerName, cause, suffix)
}
