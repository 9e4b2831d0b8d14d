package provider

import (
	"context"
	"net/http"

	"github.com/John-Robertt/hltb/internal/domain"
)

// Provider 把“站点变化”限制在 provider 包内部；上层只依赖统一接口与稳定的 domain 结构。
//
// 约束：
// - Fetch* 不做缓存、不做限速（重试/超时由 httpx 统一实现）
// - Parse* 必须是纯函数：相同输入 => 相同输出
// - pageURL 是实际请求的页面地址（用于诊断输出）
type Provider interface {
	Name() string

	FetchSearch(ctx context.Context, q domain.Query, c *http.Client) (html []byte, pageURL string, err error)
	ParseSearch(html []byte) domain.SearchResult

	FetchDetail(ctx context.Context, id int, c *http.Client) (html []byte, pageURL string, err error)
	ParseDetail(html []byte) (domain.Detail, error)
}
