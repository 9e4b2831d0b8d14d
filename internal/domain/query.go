package domain

// Query 是一次搜索的查询条件。
//
// 所有枚举字段的零值都表示“全部/默认”，编码时会替换为站点约定的默认值；
// 因此空 Query 也是合法查询。
type Query struct {
	Search string
	// Page 从 1 开始；<1 视为 1。它不进入表单参数，由网络层作为 URL 参数发送。
	Page int

	LengthType LengthType
	// LengthMin / LengthMax 原样透传给站点（不解析）。
	LengthMin string
	LengthMax string

	Platform    Platform
	SortBy      SortBy
	SortOrder   SortOrder
	Perspective Perspective
	Flow        Flow
	Genre       Genre
	Modifier    Modifier
	Randomize   bool
}

// PageOrFirst 返回规范化后的页码。
func (q Query) PageOrFirst() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

type LengthType string

const (
	LengthMain          LengthType = "main"
	LengthExtended      LengthType = "mainp"
	LengthCompletionist LengthType = "comp"
	LengthAverage       LengthType = "averagea"
)

type SortBy string

const (
	SortName          SortBy = "name"
	SortMain          SortBy = "main"
	SortExtended      SortBy = "mainp"
	SortCompletionist SortBy = "comp"
	SortAverageTime   SortBy = "averagea"
	SortTopRated      SortBy = "rating"
	SortMostPopular   SortBy = "popular"
	SortMostBacklogs  SortBy = "backlog"
	SortMostSubmitted SortBy = "usersp"
	SortMostPlayed    SortBy = "playing"
	SortMostSpeedruns SortBy = "speedrun"
	SortReleaseDate   SortBy = "release"
)

// SortOrder 的零值就是站点默认的降序。
type SortOrder int

const (
	SortDescending SortOrder = 0
	SortAscending  SortOrder = 1
)

type Modifier string

const (
	ModifierNone    Modifier = ""
	ModifierHideDLC Modifier = "hide_dlc"
	ModifierOnlyDLC Modifier = "only_dlc"
)

type Perspective string

const (
	PerspectiveAll            Perspective = ""
	PerspectiveFirstPerson    Perspective = "First-Person"
	PerspectiveIsometric      Perspective = "Isometric"
	PerspectiveSide           Perspective = "Side"
	PerspectiveText           Perspective = "Text"
	PerspectiveThirdPerson    Perspective = "Third-Person"
	PerspectiveTopDown        Perspective = "Top-Down"
	PerspectiveVirtualReality Perspective = "VirtualReality"
)

type Flow string

const (
	FlowAll                Flow = ""
	FlowIncremental        Flow = "Incremental"
	FlowMassiveMultiplayer Flow = "Massively Mutiplayer" // 站点原文拼写
	FlowMultidirectional   Flow = "Multidirectional"
	FlowOnRails            Flow = "On-Rails"
	FlowPointAndClick      Flow = "Point-and-Click"
	FlowRealTime           Flow = "Real-Time"
	FlowScrolling          Flow = "Scrolling"
	FlowTurnBased          Flow = "Turn-Based"
)
