package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/John-Robertt/hltb/internal/domain"
)

// ErrNoDocument 表示输入不是可解析的详情页文档（空输入或 <body> 内没有任何元素）。
var ErrNoDocument = errors.New("没有可解析的 HTML 文档")

// ParseError 是详情页解析失败（只有“没有文档”这一类会失败）。
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("详情页解析失败：%v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const readMore = "...Read More"

// Detail 把详情页解析为完整记录。
//
// 约束：
// - 空输入或没有文档结构：返回 *ParseError（由网络边界层翻译为“不存在”）
// - 其余任何子结构缺失都降级为默认值/缺失，不报错
// - 表头未被识别的表格直接丢弃；同类型表格后出现的覆盖先出现的
func (e Extractor) Detail(html string) (domain.Detail, error) {
	if strings.TrimSpace(html) == "" {
		return domain.Detail{}, &ParseError{Err: ErrNoDocument}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.Detail{}, &ParseError{Err: err}
	}
	if doc.Find("body").Children().Length() == 0 {
		return domain.Detail{}, &ParseError{Err: ErrNoDocument}
	}

	main := doc.Find("#global_site > .contain_out.back_blue")
	metadata := doc.Find("#global_site .profile_info")

	d := domain.Detail{
		ID:          idFromHref(main.Find(".profile_nav ul li a").First().AttrOr("href", "")),
		Name:        strings.TrimSpace(main.Find(".profile_header_game > .profile_header").Text()),
		Description: strings.TrimSpace(strings.Replace(metadata.First().Text(), readMore, "", 1)),
		ImageURL:    resolveURL(e.baseURL(), main.Find(".game_image img").First().AttrOr("src", "")),
		Stats:       parseStats(main.Find(".profile_header_game > .profile_details ul li")),
	}

	metadata.Each(func(_ int, s *goquery.Selection) {
		applyMetadata(&d, s)
	})

	doc.Find("#global_site table").Each(func(_ int, s *goquery.Selection) {
		name, grid := readTable(s)
		if t, ok := InterpretTable(name, grid); ok {
			t.MergeInto(&d.Gameplays)
		}
	})

	return d, nil
}

// parseStats 解析 "<value> <label>" 形式的统计项。
// Retired/Rating 的百分比换算为比例，其余标签保留原文。
func parseStats(items *goquery.Selection) domain.Stats {
	var st domain.Stats
	items.Each(func(_ int, s *goquery.Selection) {
		parts := strings.Fields(s.Text())
		if len(parts) < 2 {
			return
		}
		value, label := parts[0], parts[1]
		switch label {
		case "Retired":
			r := ratio(value)
			st.Retired = &r
		case "Rating":
			r := ratio(value)
			st.Rating = &r
		default:
			if st.Counts == nil {
				st.Counts = map[string]string{}
			}
			st.Counts[strings.ToLower(label)] = value
		}
	})
	return st
}

func ratio(percent string) float64 {
	r := float64(leadingInt(strings.ReplaceAll(percent, "%", ""))) / 100
	if r > 1 {
		return 1
	}
	return r
}

// applyMetadata 按加粗标签分派一个元数据块；未知标签忽略。
func applyMetadata(d *domain.Detail, s *goquery.Selection) {
	key := strings.TrimSpace(s.Find("strong").First().Text())
	if key == "" {
		return
	}
	text := s.Text()
	i := strings.LastIndex(text, key)
	if i < 0 {
		return
	}
	value := strings.TrimSpace(text[i+len(key):])

	switch key {
	case "Platforms:", "Platform:":
		d.Platforms = splitList(value)
	case "Genres:", "Genre:":
		d.Genres = splitList(value)
	case "Developers:", "Developer:":
		d.Developers = splitList(value)
	case "Publishers:", "Publisher:":
		if value != "" {
			d.Publishers = []string{value}
		}
	case "NA:", "EU:", "JP:":
		if value == "" {
			return
		}
		if d.ReleaseDates == nil {
			d.ReleaseDates = map[domain.Region]string{}
		}
		d.ReleaseDates[domain.Region(strings.TrimSuffix(key, ":"))] = value
	}
}

// splitList 按 ", " 拆分；全部为空时返回 nil（缺失）。
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ", ") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readTable 读取表头名称（thead 首个单元格）与 tbody 的单元格文本。
func readTable(t *goquery.Selection) (string, [][]string) {
	name := strings.TrimSpace(t.Find("thead tr").First().Find("td, th").First().Text())

	var grid [][]string
	t.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row = append(row, strings.TrimSpace(td.Text()))
		})
		grid = append(grid, row)
	})
	return name, grid
}
