package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/John-Robertt/hltb/internal/domain"
)

// 搜索结果里的时长文本在去掉空白后形如 "MainStory8½HoursMain+Extra12Hours"：
// 标签后紧跟可选的小时段（可带 ½）与可选的分钟段。
const fragmentPattern = `((?:\d+½?Hours)?(?:\d+Mins)?)`

var labelREs = map[domain.PlayMode]*regexp.Regexp{
	domain.PlayMain:          labelRE(`MainStory|Solo`),
	domain.PlayExtended:      labelRE(`Main\+Extra`),
	domain.PlayCompletionist: labelRE(`Completionist`),
	domain.PlayMulti:         labelRE(`Vs\.`),
}

var fragmentRE = regexp.MustCompile(`(?i)^(?:(\d+)(½)?Hours)?(?:(\d+)Mins)?`)

func labelRE(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + label + `)` + fragmentPattern)
}

// ParseDuration 在自由文本中定位某种游玩方式的首个标签，并把紧随其后的时长换算为小时。
//
// 约束：
// - 匹配前去掉所有空白（站点文本里标签与数字经常粘连或被换行拆开）
// - 未找到标签、或标签后既无小时也无分钟：返回 0
// - 调用方必须把 0 视为“未报告”而不是“0 小时”
func ParseDuration(text string, mode domain.PlayMode) float64 {
	re, ok := labelREs[mode]
	if !ok {
		return 0
	}
	m := re.FindStringSubmatch(stripSpace(text))
	if m == nil {
		return 0
	}
	return Duration(m[1])
}

// Duration 把单个时长片段（"8½Hours"、"30Mins"、"1Hours30Mins"）换算为小时。
// 无法识别的片段返回 0。
func Duration(fragment string) float64 {
	m := fragmentRE.FindStringSubmatch(stripSpace(fragment))
	if m == nil {
		return 0
	}
	var hours float64
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0
		}
		hours = float64(n)
		if m[2] != "" {
			hours += 0.5
		}
	}
	if m[3] != "" {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return 0
		}
		hours += float64(n) / 60
	}
	return hours
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
