package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/John-Robertt/hltb/internal/domain"
)

// 站点表单的默认值（调用方未指定时必须显式发送）。
const (
	searchType        = "games"
	defaultSortBy     = domain.SortMostPopular
	defaultLengthType = domain.LengthMain
)

// Param 是一个表单参数。
type Param struct {
	Key   string
	Value string
}

// Params 按站点要求的固定顺序返回全部 13 个表单参数。
func Params(q domain.Query) []Param {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	lengthType := q.LengthType
	if lengthType == "" {
		lengthType = defaultLengthType
	}
	randomize := "0"
	if q.Randomize {
		randomize = "1"
	}

	return []Param{
		{"queryString", q.Search},
		{"t", searchType},
		{"sorthead", string(sortBy)},
		{"sortd", strconv.Itoa(int(q.SortOrder))},
		{"plat", string(q.Platform)},
		{"length_type", string(lengthType)},
		{"length_min", q.LengthMin},
		{"length_max", q.LengthMax},
		{"v", string(q.Perspective)},
		{"f", string(q.Flow)},
		{"g", string(q.Genre)},
		{"detail", string(q.Modifier)},
		{"randomize", randomize},
	}
}

// Encode 把查询编码为 application/x-www-form-urlencoded 表单体。
//
// 纯函数：相同输入得到逐字节相同的输出；空 Query 也会得到完整的默认参数。
// 不能用 url.Values.Encode：它会按键排序，而站点要求固定顺序。
func Encode(q domain.Query) string {
	var b strings.Builder
	for i, p := range Params(q) {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Validate 检查枚举字段是否都在站点支持的取值范围内。
// Encode 本身不校验（任何输入都能编码）；CLI 在发请求前调用 Validate 以便尽早报错。
func Validate(q domain.Query) error {
	switch {
	case !q.SortBy.Valid():
		return fmt.Errorf("未知的排序字段：%q", q.SortBy)
	case !q.SortOrder.Valid():
		return fmt.Errorf("未知的排序方向：%d", q.SortOrder)
	case !q.LengthType.Valid():
		return fmt.Errorf("未知的时长类型：%q", q.LengthType)
	case !q.Platform.Valid():
		return fmt.Errorf("未知的平台：%q", q.Platform)
	case !q.Genre.Valid():
		return fmt.Errorf("未知的类型：%q", q.Genre)
	case !q.Perspective.Valid():
		return fmt.Errorf("未知的视角：%q", q.Perspective)
	case !q.Flow.Valid():
		return fmt.Errorf("未知的流程：%q", q.Flow)
	case !q.Modifier.Valid():
		return fmt.Errorf("未知的 DLC 过滤：%q", q.Modifier)
	}
	return nil
}
