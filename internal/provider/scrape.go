package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/John-Robertt/hltb/internal/domain"
)

// Find 抓取并解析一页搜索结果。
//
// 解析永不失败（无结果就是 Total=0）；只有抓取失败才返回 *Error。
func Find(ctx context.Context, p Provider, q domain.Query, c *http.Client) (domain.SearchResult, error) {
	if p == nil {
		return domain.SearchResult{}, errors.New("provider 不能为空")
	}
	html, _, err := p.FetchSearch(ctx, q, c)
	if err != nil {
		return domain.SearchResult{}, &Error{Provider: p.Name(), Stage: "fetch", Err: err}
	}
	return p.ParseSearch(html), nil
}

// Get 抓取并解析一个详情页。
//
// 返回值：
// - ok=false, err=nil：站点返回 404，或页面无法解析为详情页（视为“不存在”）
// - ok=false, err!=nil：抓取失败（网络/非 404 状态码），err 为 *Error
//
// 详情解析器对坏输入会报错；把它翻译为“不存在”是边界层的职责，不在解析器内部吞掉。
func Get(ctx context.Context, p Provider, id int, c *http.Client) (d domain.Detail, ok bool, err error) {
	if p == nil {
		return domain.Detail{}, false, errors.New("provider 不能为空")
	}
	if id < 0 {
		return domain.Detail{}, false, fmt.Errorf("id 不能为负数：%d", id)
	}

	html, _, err := p.FetchDetail(ctx, id, c)
	if err != nil {
		if IsNotFound(err) {
			return domain.Detail{}, false, nil
		}
		return domain.Detail{}, false, &Error{Provider: p.Name(), Stage: "fetch", Err: err}
	}

	d, err = p.ParseDetail(html)
	if err != nil {
		return domain.Detail{}, false, nil
	}
	return d, true, nil
}

// Error 是 provider 阶段的可追溯错误。
// 解析失败不会走到这里（Get 视为不存在，Find 的解析永不失败），因此 Stage 目前只有 "fetch"。
type Error struct {
	Provider string
	Stage    string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider=%s stage=%s: %v", e.Provider, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
