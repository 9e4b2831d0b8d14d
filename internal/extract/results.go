package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/John-Robertt/hltb/internal/domain"
)

var totalRE = regexp.MustCompile(`(?i)We\s+Found\s+(\d+)\s+Games`)

// Results 把搜索结果页解析为总数 + 本页摘要列表。
//
// 约束：
// - 永不失败：空输入、无结果区块、无法解析的 HTML 都返回 {Total:0, Games:[]}
// - 单个条目的子字段缺失时降级为默认值（id=0、空名称、空图片），条目本身保留
func (e Extractor) Results(html string) domain.SearchResult {
	out := domain.SearchResult{Games: []domain.Summary{}}
	if strings.TrimSpace(html) == "" {
		return out
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return out
	}

	// 没有“We Found N Games”标题区块就是没有结果（不是错误）。
	heading := strings.TrimSpace(doc.Find(".global_padding > h3").Text())
	if heading == "" {
		return out
	}
	if m := totalRE.FindStringSubmatch(heading); m != nil {
		out.Total = leadingInt(m[1])
	}

	base := e.baseURL()
	doc.Find("ul li").Each(func(_ int, s *goquery.Selection) {
		out.Games = append(out.Games, summaryFromEntry(s, base))
	})
	return out
}

func summaryFromEntry(s *goquery.Selection, base string) domain.Summary {
	details := s.Find(".search_list_details")
	title := details.Find("h3 a").First()

	sum := domain.Summary{
		ID:       idFromHref(title.AttrOr("href", "")),
		Name:     strings.TrimSpace(title.Text()),
		ImageURL: resolveURL(base, s.Find(".search_list_image img").First().AttrOr("src", "")),
	}

	times := details.Text()
	for _, m := range domain.PlayModes {
		sum.SetDuration(m, ParseDuration(times, m))
	}
	return sum
}
