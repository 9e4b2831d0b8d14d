package domain

import (
	"sort"
	"time"
)

const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusFailed   = "failed"
)

const (
	ErrCodeInvalidQuery   = "invalid_query"
	ErrCodeFetchFailed    = "fetch_failed"
	ErrCodeConfigNotFound = "config_not_found"
	ErrCodeConfigInvalid  = "config_invalid"
)

// Report 是 CLI 对外稳定输出（stdout JSON）的结构；search 与 get 共用。
type Report struct {
	Command string `json:"command"`
	// Query 是 search 的关键字，或 get 的 id 列表（逗号分隔）。
	Query string `json:"query"`
	Page  int    `json:"page,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`

	Summary ReportSummary `json:"summary"`

	Search *SearchResult `json:"search,omitempty"`
	Items  []ItemResult  `json:"items,omitempty"`
}

type ReportSummary struct {
	// Total 是站点声明的匹配总数（search），或请求的 id 数（get）。
	Total int `json:"total"`
	// Returned 是本次实际拿到的记录数。
	Returned int `json:"returned"`
	// Timed 是至少有一项时长数据的记录数。
	Timed    int `json:"timed"`
	NotFound int `json:"not_found"`
	Failed   int `json:"failed"`
}

// ItemResult 是 get 中单个 id 的结果。
type ItemResult struct {
	ID int `json:"id"`

	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`

	Game *Detail `json:"game,omitempty"`
}

// Finalize 做四件事：
// 1) 时间统一为 UTC（确保 JSON 为 RFC3339 且后缀 Z）
// 2) items 稳定排序：按 id 升序（并发抓取的完成顺序不确定）
// 3) summary 由 search/items 计算得出
// 4) status 未显式设置时由结果推导：有错误 => failed；有记录 => found；否则 not_found
func (r *Report) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	sort.SliceStable(r.Items, func(i, j int) bool {
		return r.Items[i].ID < r.Items[j].ID
	})

	var s ReportSummary
	if r.Search != nil {
		s.Total = r.Search.Total
		s.Returned = len(r.Search.Games)
		for _, g := range r.Search.Games {
			if g.Main != nil || g.Extended != nil || g.Completionist != nil || g.Multi != nil {
				s.Timed++
			}
		}
	}
	for _, it := range r.Items {
		s.Total++
		switch it.Status {
		case StatusFound:
			s.Returned++
			if it.Game != nil && len(it.Game.Gameplays.Kinds()) > 0 {
				s.Timed++
			}
		case StatusNotFound:
			s.NotFound++
		case StatusFailed:
			s.Failed++
		}
	}
	r.Summary = s

	if r.Status != "" {
		return
	}
	switch {
	case r.ErrorCode != "" || s.Failed > 0:
		r.Status = StatusFailed
	case s.Returned > 0:
		r.Status = StatusFound
	default:
		r.Status = StatusNotFound
	}
}
