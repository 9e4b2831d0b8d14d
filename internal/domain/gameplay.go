package domain

// TableKind 是详情页时长表格的语义类型（也是 Gameplays 的 JSON 键）。
type TableKind string

const (
	TableSingle    TableKind = "single"
	TableMulti     TableKind = "multi"
	TableDLC       TableKind = "dlc"
	TableMainGame  TableKind = "mainGame"
	TableSpeedrun  TableKind = "speedrun"
	TablePlatforms TableKind = "platforms"
)

// Field 是表格列的语义字段名。
type Field string

const (
	FieldType          Field = "type"
	FieldName          Field = "name"
	FieldPlatform      Field = "platform"
	FieldPolled        Field = "polled"
	FieldRated         Field = "rated"
	FieldAverage       Field = "average"
	FieldMedian        Field = "median"
	FieldRushed        Field = "rushed"
	FieldLeisure       Field = "leisure"
	FieldLeast         Field = "least"
	FieldMost          Field = "most"
	FieldMain          Field = "main"
	FieldExtended      Field = "extended"
	FieldCompletionist Field = "completionist"
	FieldAll           Field = "all"
	FieldFastest       Field = "fastest"
	FieldSlowest       Field = "slowest"
	FieldLongest       Field = "longest"
)

// Row 是按字段名索引的一行单元格文本。
// 占位符 "--" 的单元格不会出现在 Row 中（缺失 != 空串）。
type Row map[Field]string

func (r Row) opt(f Field) *string {
	v, ok := r[f]
	if !ok {
		return nil
	}
	return &v
}

// SinglePlayerRow 对应 "Single-Player" 表。
type SinglePlayerRow struct {
	Type    *string `json:"type,omitempty"`
	Polled  *string `json:"polled,omitempty"`
	Average *string `json:"average,omitempty"`
	Median  *string `json:"median,omitempty"`
	Rushed  *string `json:"rushed,omitempty"`
	Leisure *string `json:"leisure,omitempty"`
}

func NewSinglePlayerRow(r Row) SinglePlayerRow {
	return SinglePlayerRow{
		Type:    r.opt(FieldType),
		Polled:  r.opt(FieldPolled),
		Average: r.opt(FieldAverage),
		Median:  r.opt(FieldMedian),
		Rushed:  r.opt(FieldRushed),
		Leisure: r.opt(FieldLeisure),
	}
}

// MultiPlayerRow 对应 "Multi-Player" 表。
type MultiPlayerRow struct {
	Type    *string `json:"type,omitempty"`
	Polled  *string `json:"polled,omitempty"`
	Average *string `json:"average,omitempty"`
	Median  *string `json:"median,omitempty"`
	Least   *string `json:"least,omitempty"`
	Most    *string `json:"most,omitempty"`
}

func NewMultiPlayerRow(r Row) MultiPlayerRow {
	return MultiPlayerRow{
		Type:    r.opt(FieldType),
		Polled:  r.opt(FieldPolled),
		Average: r.opt(FieldAverage),
		Median:  r.opt(FieldMedian),
		Least:   r.opt(FieldLeast),
		Most:    r.opt(FieldMost),
	}
}

// ContentRow 对应 "Additional Content"（DLC）与 "Main Game" 表，两者列结构相同。
type ContentRow struct {
	Name          *string `json:"name,omitempty"`
	Polled        *string `json:"polled,omitempty"`
	Rated         *string `json:"rated,omitempty"`
	Main          *string `json:"main,omitempty"`
	Extended      *string `json:"extended,omitempty"`
	Completionist *string `json:"completionist,omitempty"`
	All           *string `json:"all,omitempty"`
}

func NewContentRow(r Row) ContentRow {
	return ContentRow{
		Name:          r.opt(FieldName),
		Polled:        r.opt(FieldPolled),
		Rated:         r.opt(FieldRated),
		Main:          r.opt(FieldMain),
		Extended:      r.opt(FieldExtended),
		Completionist: r.opt(FieldCompletionist),
		All:           r.opt(FieldAll),
	}
}

// SpeedrunRow 对应 "Speedrun" 表。
type SpeedrunRow struct {
	Type    *string `json:"type,omitempty"`
	Polled  *string `json:"polled,omitempty"`
	Average *string `json:"average,omitempty"`
	Median  *string `json:"median,omitempty"`
	Fastest *string `json:"fastest,omitempty"`
	Slowest *string `json:"slowest,omitempty"`
}

func NewSpeedrunRow(r Row) SpeedrunRow {
	return SpeedrunRow{
		Type:    r.opt(FieldType),
		Polled:  r.opt(FieldPolled),
		Average: r.opt(FieldAverage),
		Median:  r.opt(FieldMedian),
		Fastest: r.opt(FieldFastest),
		Slowest: r.opt(FieldSlowest),
	}
}

// PlatformRow 对应 "Platform" 表（按平台拆分的时长）。
type PlatformRow struct {
	Platform      *string `json:"platform,omitempty"`
	Polled        *string `json:"polled,omitempty"`
	Main          *string `json:"main,omitempty"`
	Extended      *string `json:"extended,omitempty"`
	Completionist *string `json:"completionist,omitempty"`
	Fastest       *string `json:"fastest,omitempty"`
	Longest       *string `json:"longest,omitempty"`
}

func NewPlatformRow(r Row) PlatformRow {
	return PlatformRow{
		Platform:      r.opt(FieldPlatform),
		Polled:        r.opt(FieldPolled),
		Main:          r.opt(FieldMain),
		Extended:      r.opt(FieldExtended),
		Completionist: r.opt(FieldCompletionist),
		Fastest:       r.opt(FieldFastest),
		Longest:       r.opt(FieldLongest),
	}
}

// Gameplays 按表格类型保存详情页的时长表。
// 某个类型为 nil 表示页面上没有可识别的该类表格。
type Gameplays struct {
	Single    []SinglePlayerRow `json:"single,omitempty"`
	Multi     []MultiPlayerRow  `json:"multi,omitempty"`
	DLC       []ContentRow      `json:"dlc,omitempty"`
	MainGame  []ContentRow      `json:"mainGame,omitempty"`
	Speedrun  []SpeedrunRow     `json:"speedrun,omitempty"`
	Platforms []PlatformRow     `json:"platforms,omitempty"`
}

// Kinds 返回当前存在的表格类型（按固定顺序）。
func (g Gameplays) Kinds() []TableKind {
	var out []TableKind
	if g.Single != nil {
		out = append(out, TableSingle)
	}
	if g.Multi != nil {
		out = append(out, TableMulti)
	}
	if g.DLC != nil {
		out = append(out, TableDLC)
	}
	if g.MainGame != nil {
		out = append(out, TableMainGame)
	}
	if g.Speedrun != nil {
		out = append(out, TableSpeedrun)
	}
	if g.Platforms != nil {
		out = append(out, TablePlatforms)
	}
	return out
}

// ConvertRows 把通用 Row 批量转换为某个表格变体；空输入返回 nil（表示缺失）。
func ConvertRows[T any](rows []Row, conv func(Row) T) []T {
	if len(rows) == 0 {
		return nil
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}
