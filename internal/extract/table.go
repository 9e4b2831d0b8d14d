package extract

import (
	"github.com/John-Robertt/hltb/internal/domain"
)

// Placeholder 是站点用来表示“无数据”的单元格文本（与空串不同）。
const Placeholder = "--"

// Table 是一张已识别表格的解析结果。
type Table struct {
	Kind domain.TableKind
	Rows []domain.Row

	schema Schema
}

// InterpretTable 把通用二维单元格文本按表头名称对应的 schema 转换为具名行。
//
// 规则：
// - 未知表头：ok=false
// - 单元格按位置与字段名一一对应；超出字段数的单元格丢弃
// - 行不足（参差行）时，缺失的尾部字段不出现
// - 文本恰为 "--" 的单元格不出现
func InterpretTable(name string, grid [][]string) (Table, bool) {
	s, ok := LookupSchema(name)
	if !ok {
		return Table{}, false
	}

	rows := make([]domain.Row, 0, len(grid))
	for _, cells := range grid {
		r := make(domain.Row, len(s.Fields))
		for i, f := range s.Fields {
			if i >= len(cells) {
				break
			}
			if cells[i] == Placeholder {
				continue
			}
			r[f] = cells[i]
		}
		rows = append(rows, r)
	}
	return Table{Kind: s.Kind, Rows: rows, schema: s}, true
}

// MergeInto 把表格写入 g 的对应类型；同类型后写覆盖先写。
func (t Table) MergeInto(g *domain.Gameplays) {
	if g == nil || t.schema.store == nil {
		return
	}
	t.schema.store(g, t.Rows)
}
