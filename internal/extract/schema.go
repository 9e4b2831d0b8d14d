package extract

import (
	"slices"

	"github.com/John-Robertt/hltb/internal/domain"
)

// Schema 描述一种时长表格：语义类型 + 按列顺序的字段名。
type Schema struct {
	Kind   domain.TableKind
	Fields []domain.Field

	store func(g *domain.Gameplays, rows []domain.Row)
}

var (
	singlePlayerFields = []domain.Field{
		domain.FieldType, domain.FieldPolled, domain.FieldAverage, domain.FieldMedian, domain.FieldRushed, domain.FieldLeisure,
	}
	multiPlayerFields = []domain.Field{
		domain.FieldType, domain.FieldPolled, domain.FieldAverage, domain.FieldMedian, domain.FieldLeast, domain.FieldMost,
	}
	relatedContentFields = []domain.Field{
		domain.FieldName, domain.FieldPolled, domain.FieldRated, domain.FieldMain, domain.FieldExtended, domain.FieldCompletionist, domain.FieldAll,
	}
	speedrunFields = []domain.Field{
		domain.FieldType, domain.FieldPolled, domain.FieldAverage, domain.FieldMedian, domain.FieldFastest, domain.FieldSlowest,
	}
	platformFields = []domain.Field{
		domain.FieldPlatform, domain.FieldPolled, domain.FieldMain, domain.FieldExtended, domain.FieldCompletionist, domain.FieldFastest, domain.FieldLongest,
	}
)

// schemas 以表头名称（精确匹配）索引。新增一种表格只需要在这里加一行。
var schemas = map[string]Schema{
	"Single-Player": {
		Kind: domain.TableSingle, Fields: singlePlayerFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.Single = domain.ConvertRows(rows, domain.NewSinglePlayerRow)
		},
	},
	"Multi-Player": {
		Kind: domain.TableMulti, Fields: multiPlayerFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.Multi = domain.ConvertRows(rows, domain.NewMultiPlayerRow)
		},
	},
	"Additional Content": {
		Kind: domain.TableDLC, Fields: relatedContentFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.DLC = domain.ConvertRows(rows, domain.NewContentRow)
		},
	},
	"Main Game": {
		Kind: domain.TableMainGame, Fields: relatedContentFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.MainGame = domain.ConvertRows(rows, domain.NewContentRow)
		},
	},
	"Speedrun": {
		Kind: domain.TableSpeedrun, Fields: speedrunFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.Speedrun = domain.ConvertRows(rows, domain.NewSpeedrunRow)
		},
	},
	"Platform": {
		Kind: domain.TablePlatforms, Fields: platformFields,
		store: func(g *domain.Gameplays, rows []domain.Row) {
			g.Platforms = domain.ConvertRows(rows, domain.NewPlatformRow)
		},
	},
}

// LookupSchema 按表头名称查找表格 schema；未知名称返回 ok=false。
// 返回的 Fields 是副本，调用方可以随意修改。
func LookupSchema(name string) (Schema, bool) {
	s, ok := schemas[name]
	if !ok {
		return Schema{}, false
	}
	s.Fields = slices.Clone(s.Fields)
	return s, true
}
