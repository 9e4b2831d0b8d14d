package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/John-Robertt/hltb/internal/app/run"
	"github.com/John-Robertt/hltb/internal/config"
	"github.com/John-Robertt/hltb/internal/domain"
	"github.com/John-Robertt/hltb/internal/infra/fsx"
	"github.com/John-Robertt/hltb/internal/infra/httpx"
	"github.com/John-Robertt/hltb/internal/provider"
	"github.com/John-Robertt/hltb/internal/provider/hltb"
	"github.com/John-Robertt/hltb/internal/query"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 || isHelp(args[0]) {
		printUsage()
		return
	}

	var code int
	switch args[0] {
	case "search":
		code = searchCmd(args[1:])
	case "get":
		code = getCmd(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "未知命令：%q\n\n", args[0])
		printUsage()
		code = 2
	}
	if code != 0 {
		os.Exit(code)
	}
}

// commonArgs 是 search/get 共享的连接参数。
type commonArgs struct {
	ConfigPath string
	// Out 非空时额外把报告 JSON 写入该文件（覆盖）。
	Out string

	BaseURL    string
	BaseURLSet bool

	ProxyURL    string
	ProxyURLSet bool
}

func (c commonArgs) cli() config.CLIArgs {
	return config.CLIArgs{
		ConfigPath:  c.ConfigPath,
		BaseURL:     c.BaseURL,
		BaseURLSet:  c.BaseURLSet,
		ProxyURL:    c.ProxyURL,
		ProxyURLSet: c.ProxyURLSet,
	}
}

// parseCommon 尝试把 args[i] 解析为共享参数；consumed 表示额外消耗的参数个数。
func (c *commonArgs) parse(args []string, i int) (ok bool, consumed int, err error) {
	a := args[i]
	name, value, hasValue := strings.Cut(a, "=")
	switch name {
	case "--config", "--base-url", "--proxy", "--out":
	default:
		return false, 0, nil
	}
	if !hasValue {
		if i+1 >= len(args) {
			return true, 0, fmt.Errorf("%s 需要一个值", name)
		}
		value = args[i+1]
		consumed = 1
	}
	switch name {
	case "--config":
		if strings.TrimSpace(value) == "" {
			return true, 0, fmt.Errorf("--config 不能为空")
		}
		c.ConfigPath = value
	case "--out":
		if strings.TrimSpace(value) == "" {
			return true, 0, fmt.Errorf("--out 不能为空")
		}
		c.Out = value
	case "--base-url":
		c.BaseURL = value
		c.BaseURLSet = true
	case "--proxy":
		c.ProxyURL = value
		c.ProxyURLSet = true
	}
	return true, consumed, nil
}

type searchArgs struct {
	commonArgs
	Query domain.Query
}

func parseSearchArgs(args []string) (searchArgs, error) {
	sa := searchArgs{}
	var words []string

	for i := 0; i < len(args); i++ {
		ok, n, err := sa.commonArgs.parse(args, i)
		if err != nil {
			return searchArgs{}, err
		}
		if ok {
			i += n
			continue
		}

		a := args[i]
		if a == "--random" {
			sa.Query.Randomize = true
			continue
		}
		if !strings.HasPrefix(a, "--") {
			if strings.HasPrefix(a, "-") && a != "-" {
				return searchArgs{}, fmt.Errorf("未知参数 %q", a)
			}
			words = append(words, a)
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		if !hasValue {
			if i+1 >= len(args) {
				return searchArgs{}, fmt.Errorf("%s 需要一个值", name)
			}
			i++
			value = args[i]
		}
		q := &sa.Query
		switch name {
		case "--page":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return searchArgs{}, fmt.Errorf("--page 必须是正整数，实际是 %q", value)
			}
			q.Page = n
		case "--platform":
			q.Platform = domain.Platform(value)
		case "--genre":
			q.Genre = domain.Genre(value)
		case "--sort":
			q.SortBy = domain.SortBy(value)
		case "--order":
			switch value {
			case "desc":
				q.SortOrder = domain.SortDescending
			case "asc":
				q.SortOrder = domain.SortAscending
			default:
				return searchArgs{}, fmt.Errorf("--order 只能是 asc 或 desc，实际是 %q", value)
			}
		case "--length-type":
			q.LengthType = domain.LengthType(value)
		case "--length-min":
			q.LengthMin = value
		case "--length-max":
			q.LengthMax = value
		case "--perspective":
			q.Perspective = domain.Perspective(value)
		case "--flow":
			q.Flow = domain.Flow(value)
		case "--modifier":
			q.Modifier = domain.Modifier(value)
		default:
			return searchArgs{}, fmt.Errorf("未知参数 %q", name)
		}
	}

	sa.Query.Search = strings.Join(words, " ")
	return sa, nil
}

type getArgs struct {
	commonArgs
	IDs []int
}

func parseGetArgs(args []string) (getArgs, error) {
	ga := getArgs{}

	for i := 0; i < len(args); i++ {
		ok, n, err := ga.commonArgs.parse(args, i)
		if err != nil {
			return getArgs{}, err
		}
		if ok {
			i += n
			continue
		}
		a := args[i]
		if strings.HasPrefix(a, "-") {
			return getArgs{}, fmt.Errorf("未知参数 %q", a)
		}
		// 支持 "966,68151" 与多个位置参数两种写法。
		for _, part := range strings.Split(a, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || id < 0 {
				return getArgs{}, fmt.Errorf("id 必须是非负整数，实际是 %q", part)
			}
			ga.IDs = append(ga.IDs, id)
		}
	}
	if len(ga.IDs) == 0 {
		return getArgs{}, fmt.Errorf("缺少 id")
	}
	return ga, nil
}

func searchCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printSearchUsage()
			return 0
		}
	}
	sa, err := parseSearchArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printSearchUsage()
		return 2
	}

	started := time.Now()
	rep := domain.Report{Command: "search", Query: sa.Query.Search, Page: sa.Query.PageOrFirst(), StartedAt: started}

	eff, c, ok := setup(&rep, sa.commonArgs)
	if ok {
		ui := newStatusUI()
		ui.OnStart(eff, "search", strconv.Quote(sa.Query.Search))
		doSearch(context.Background(), &rep, eff, c, sa.Query)
		ui.OnDone(time.Since(started))
	}
	return finish(&rep, sa.Out)
}

func getCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printGetUsage()
			return 0
		}
	}
	ga, err := parseGetArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printGetUsage()
		return 2
	}

	ids := make([]string, 0, len(ga.IDs))
	for _, id := range ga.IDs {
		ids = append(ids, strconv.Itoa(id))
	}

	started := time.Now()
	rep := domain.Report{Command: "get", Query: strings.Join(ids, ","), StartedAt: started}

	eff, c, ok := setup(&rep, ga.commonArgs)
	if ok {
		ui := newStatusUI()
		ui.OnStart(eff, "get", rep.Query)
		doGet(context.Background(), &rep, eff, c, ga.IDs, ui)
		ui.OnDone(time.Since(started))
	}
	return finish(&rep, ga.Out)
}

// setup 读取配置并构造 http client；失败时把错误写入报告并返回 ok=false。
func setup(rep *domain.Report, ca commonArgs) (config.EffectiveConfig, *http.Client, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		fail(rep, domain.ErrCodeConfigInvalid, fmt.Errorf("读取当前目录失败：%w", err))
		return config.EffectiveConfig{}, nil, false
	}
	eff, err := config.LoadEffective(cwd, ca.cli())
	if err != nil {
		code := config.Code(err)
		if code == "" {
			code = domain.ErrCodeConfigInvalid
		}
		fail(rep, code, err)
		return config.EffectiveConfig{}, nil, false
	}
	c, err := httpx.NewClient(httpx.Options{ProxyURL: eff.ProxyURL, Timeout: eff.Timeout, RetryMax: eff.RetryMax})
	if err != nil {
		fail(rep, domain.ErrCodeConfigInvalid, err)
		return config.EffectiveConfig{}, nil, false
	}
	return eff, c, true
}

func newProvider(eff config.EffectiveConfig) hltb.Provider {
	return hltb.Provider{BaseURL: eff.BaseURL, SearchPath: eff.SearchPath, DetailPath: eff.DetailPath}
}

func doSearch(ctx context.Context, rep *domain.Report, eff config.EffectiveConfig, c *http.Client, q domain.Query) {
	if err := query.Validate(q); err != nil {
		fail(rep, domain.ErrCodeInvalidQuery, err)
		return
	}
	res, err := provider.Find(ctx, newProvider(eff), q, c)
	if err != nil {
		fail(rep, domain.ErrCodeFetchFailed, err)
		return
	}
	rep.Search = &res
}

func doGet(ctx context.Context, rep *domain.Report, eff config.EffectiveConfig, c *http.Client, ids []int, obs run.Observer) {
	rep.Items = run.GetMany(ctx, newProvider(eff), c, ids, eff.Concurrency, obs)
}

func fail(rep *domain.Report, code string, err error) {
	rep.ErrorCode = code
	rep.ErrorMsg = err.Error()
	var pe *provider.Error
	if errors.As(err, &pe) {
		rep.ErrorMsg = run.HumanizeFetchError(pe.Provider, pe.Err)
	}
}

// finish 收尾并输出报告，返回进程退出码。
// 退出码：0=成功（搜索无结果也算成功）；1=失败，或 get 中有 id 不存在。
func finish(rep *domain.Report, out string) int {
	rep.FinishedAt = time.Now()
	rep.Finalize()

	if out != "" {
		if err := writeReportFile(out, *rep); err != nil {
			fmt.Fprintf(os.Stderr, "写入报告文件失败：%v\n", err)
			emitReport(os.Stdout, os.Stderr, *rep, isTTY(os.Stdout))
			return 1
		}
	}
	emitReport(os.Stdout, os.Stderr, *rep, isTTY(os.Stdout))

	if rep.Status == domain.StatusFailed || rep.Summary.NotFound > 0 {
		return 1
	}
	return 0
}

func emitReport(stdout, stderr io.Writer, rep domain.Report, tty bool) {
	if tty {
		printHuman(stdout, rep)
		if rep.ErrorCode != "" {
			fmt.Fprintf(stderr, "%s: %s\n", rep.ErrorCode, rep.ErrorMsg)
		}
		for _, it := range rep.Items {
			if it.Status == domain.StatusFailed {
				fmt.Fprintf(stderr, "%d %s: %s\n", it.ID, it.ErrorCode, it.ErrorMsg)
			}
		}
		return
	}

	// stdout 非 TTY：stdout 必须且仅输出一个 Report JSON（日志/摘要走 stderr）。
	enc := json.NewEncoder(stdout)
	_ = enc.Encode(rep)
	fmt.Fprintf(stderr, "完成：status=%s total=%d returned=%d timed=%d not_found=%d failed=%d\n",
		rep.Status, rep.Summary.Total, rep.Summary.Returned, rep.Summary.Timed, rep.Summary.NotFound, rep.Summary.Failed,
	)
}

func writeReportFile(path string, rep domain.Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return fsx.WriteFileAtomic(path, b)
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  hltb search <关键字...> [选项]
  hltb get <id>[,<id>...] [选项]

命令：
  search  搜索游戏（一页结果）
  get     读取游戏详情页（多个 id 时按配置并发抓取）

使用 "hltb search --help" / "hltb get --help" 查看详细说明。
`)
}

const connectionUsage = `  --config      配置文件路径（默认读取 ./hltb.yaml，可选）
  --base-url    站点地址（覆盖配置文件）
  --proxy       代理地址；--proxy= 关闭配置文件中的代理
  --out         同时把报告 JSON 写入该文件（覆盖）
  -h, --help    显示帮助
`

func printSearchUsage() {
	fmt.Fprint(os.Stdout, `用法：
  hltb search <关键字...> [选项]

选项：
  --page N            页码（默认 1）
  --platform P        平台（例如 "Nintendo Switch"）
  --genre G           类型（例如 "Action"）
  --sort S            排序：name|main|mainp|comp|averagea|rating|popular|backlog|usersp|playing|speedrun|release
  --order asc|desc    排序方向（默认 desc）
  --length-type T     时长过滤类型：main|mainp|comp|averagea
  --length-min N      时长下限（小时）
  --length-max N      时长上限（小时）
  --perspective V     视角
  --flow F            流程
  --modifier M        DLC 过滤：hide_dlc|only_dlc
  --random            随机顺序
`+connectionUsage)
}

func printGetUsage() {
	fmt.Fprint(os.Stdout, `用法：
  hltb get <id>[,<id>...] [选项]

选项：
`+connectionUsage)
}

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
