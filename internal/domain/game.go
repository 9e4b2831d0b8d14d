package domain

import "encoding/json"

// PlayMode 是搜索结果中时长所属的游玩方式。
type PlayMode string

const (
	PlayMain          PlayMode = "main"
	PlayExtended      PlayMode = "extended"
	PlayCompletionist PlayMode = "completionist"
	PlayMulti         PlayMode = "multiplayer"
)

// PlayModes 按固定顺序列出全部游玩方式（解析与输出都按此顺序）。
var PlayModes = []PlayMode{PlayMain, PlayExtended, PlayCompletionist, PlayMulti}

// Summary 是搜索结果中的一条摘要记录。
//
// 约束：
// - 时长字段为 nil 表示“站点未报告”，不是 0；解析得到 0 时必须保持 nil
// - ImageURL 要么是绝对 URL，要么是空串
type Summary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`

	Main          *float64 `json:"gameplayMain,omitempty"`
	Extended      *float64 `json:"gameplayExtended,omitempty"`
	Completionist *float64 `json:"gameplayCompletionist,omitempty"`
	Multi         *float64 `json:"gameplayMulti,omitempty"`
}

// Duration 返回某种游玩方式的小时数；ok=false 表示未报告。
func (s Summary) Duration(m PlayMode) (hours float64, ok bool) {
	if p := s.durationPtr(m); p != nil && *p != nil {
		return **p, true
	}
	return 0, false
}

// SetDuration 只记录非零时长（0 与“未报告”不可区分，统一视为缺失）。
func (s *Summary) SetDuration(m PlayMode, hours float64) {
	p := s.durationPtr(m)
	if p == nil {
		return
	}
	if hours <= 0 {
		*p = nil
		return
	}
	h := hours
	*p = &h
}

func (s *Summary) durationPtr(m PlayMode) **float64 {
	switch m {
	case PlayMain:
		return &s.Main
	case PlayExtended:
		return &s.Extended
	case PlayCompletionist:
		return &s.Completionist
	case PlayMulti:
		return &s.Multi
	default:
		return nil
	}
}

// SearchResult 是一页搜索结果：站点声明的总数 + 本页实际渲染出的条目。
// Total 可能大于 len(Games)（分页）。
type SearchResult struct {
	Total int       `json:"total"`
	Games []Summary `json:"data"`
}

// Region 是发售日期的地区代码。
type Region string

const (
	RegionNA Region = "NA"
	RegionEU Region = "EU"
	RegionJP Region = "JP"
)

// Detail 是详情页解析得到的完整记录。
//
// 约束：可选列表要么缺失（nil），要么非空；不用空切片表示“缺失”。
type Detail struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	Stats Stats `json:"stats"`

	Platforms  []string `json:"platforms,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Developers []string `json:"developers,omitempty"`
	// Publishers 保留站点原文（不按 ", " 拆分），因此最多只有一项。
	Publishers []string `json:"publishers,omitempty"`

	ReleaseDates map[Region]string `json:"releaseDates,omitempty"`

	Gameplays Gameplays `json:"gameplays"`
}

// Stats 是详情页头部的统计信息。
//
// Counts 保存原样的计数文本（例如 "1.2K"），键是小写后的标签（playing/backlogs/replays/beat...）。
// Retired 与 Rating 由百分比文本换算为 [0,1] 的比例。
type Stats struct {
	Counts  map[string]string
	Retired *float64
	Rating  *float64
}

// Count 返回某个计数标签的原始文本。
func (s Stats) Count(label string) (string, bool) {
	v, ok := s.Counts[label]
	return v, ok
}

// MarshalJSON 把 Stats 平铺为一个对象：{"playing":"1.2K","retired":0.05,...}。
func (s Stats) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.Counts)+2)
	for k, v := range s.Counts {
		m[k] = v
	}
	if s.Retired != nil {
		m["retired"] = *s.Retired
	}
	if s.Rating != nil {
		m["rating"] = *s.Rating
	}
	return json.Marshal(m)
}
