package domain

// 站点地址与端点的内置默认值（配置文件可覆盖）。
const (
	DefaultBaseURL    = "https://howlongtobeat.com/"
	DefaultSearchPath = "search_results"
	DefaultDetailPath = "game"
)
