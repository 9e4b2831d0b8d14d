package extract

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/John-Robertt/hltb/internal/domain"
)

// Extractor 把站点 HTML 解析为结构化记录。
//
// 约束：
// - 纯函数：相同输入 => 相同输出，不做网络 I/O、不保留状态（可并发使用）
// - 页面结构是外部契约，随时可能变化；缺失的子结构降级为默认值而不是报错
type Extractor struct {
	// BaseURL 用于把相对图片地址补全为绝对地址；为空时使用 domain.DefaultBaseURL。
	BaseURL string
}

func (e Extractor) baseURL() string {
	u := strings.TrimSpace(e.BaseURL)
	if u == "" {
		return domain.DefaultBaseURL
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// resolveURL 以 base 为基准补全 href；href 为空时返回空串。
func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	ru, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(ru).String()
}

// idFromHref 取链接目标中最后一个 '=' 之后的数字前缀（形如 "game?id=966"）。
// 无法解析时返回 0。
func idFromHref(href string) int {
	href = strings.TrimSpace(href)
	if i := strings.LastIndex(href, "="); i >= 0 {
		href = href[i+1:]
	}
	return leadingInt(href)
}

// leadingInt 解析字符串开头的十进制数字；没有数字或溢出时返回 0。
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
