package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/John-Robertt/hltb/internal/app/run"
	"github.com/John-Robertt/hltb/internal/config"
	"github.com/John-Robertt/hltb/internal/domain"
)

var _ run.Observer = (*statusUI)(nil)

// statusUI 在交互终端里打印生效配置、逐条进度与耗时。
//
// 所有过程信息写到 stderr（或 fallback 到 stdout），不污染 stdout 的 JSON 输出契约；
// 非交互环境下 w 为 nil，所有方法都是空操作。
type statusUI struct {
	w  io.Writer
	mu sync.Mutex
}

func newStatusUI() *statusUI {
	w, interactive := pickStatusWriter()
	if !interactive {
		return &statusUI{}
	}
	return &statusUI{w: w}
}

func (u *statusUI) OnStart(eff config.EffectiveConfig, command, target string) {
	if u.w == nil {
		return
	}
	now := time.Now()
	fmt.Fprintf(u.w, "[%s] hltb %s %s\n", now.Format("15:04:05"), command, target)
	fmt.Fprintln(u.w, "配置（生效）:")
	fmt.Fprintf(u.w, "  base_url: %s\n", truncate(eff.BaseURL, 120))
	fmt.Fprintf(u.w, "  search: %s  detail: %s\n", eff.SearchPath, eff.DetailPath)
	fmt.Fprintf(u.w, "  timeout: %s  retry_max: %d  concurrency: %d\n", eff.Timeout, eff.RetryMax, eff.Concurrency)
	fmt.Fprintf(u.w, "  proxy: %s\n", formatProxy(eff.ProxyURL))
	fmt.Fprintln(u.w)
}

func (u *statusUI) OnItemDone(idx, total int, res domain.ItemResult, dur time.Duration) {
	if u.w == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	switch res.Status {
	case domain.StatusFound:
		name := ""
		if res.Game != nil {
			name = truncate(res.Game.Name, 60)
		}
		fmt.Fprintf(u.w, "[%d/%d] %d OK %s (%s)\n", idx, total, res.ID, name, formatShortDuration(dur))
	case domain.StatusNotFound:
		fmt.Fprintf(u.w, "[%d/%d] %d NOT FOUND (%s)\n", idx, total, res.ID, formatShortDuration(dur))
	default:
		fmt.Fprintf(u.w, "[%d/%d] %d FAIL %s: %s (%s)\n",
			idx, total, res.ID, res.ErrorCode, truncate(res.ErrorMsg, 160), formatShortDuration(dur),
		)
	}
}

func (u *statusUI) OnDone(dur time.Duration) {
	if u.w == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.w, "耗时：%s\n", formatShortDuration(dur))
}

func pickStatusWriter() (io.Writer, bool) {
	if isTTY(os.Stderr) {
		return os.Stderr, true
	}
	// 某些环境（例如仅重定向 stderr）下，stdout 仍是 TTY：退化输出到 stdout。
	if isTTY(os.Stdout) {
		return os.Stdout, true
	}
	return nil, false
}

// printHuman 是 stdout 为 TTY 时的可读输出。
func printHuman(w io.Writer, rep domain.Report) {
	switch {
	case rep.Search != nil:
		fmt.Fprintf(w, "共 %d 条（第 %d 页，本页 %d 条）\n", rep.Search.Total, rep.Page, len(rep.Search.Games))
		for _, g := range rep.Search.Games {
			fmt.Fprintf(w, "%8d  %s%s\n", g.ID, truncate(g.Name, 60), formatDurations(g))
		}
	case len(rep.Items) > 0:
		for i, it := range rep.Items {
			if i > 0 {
				fmt.Fprintln(w)
			}
			switch {
			case it.Game != nil:
				printDetail(w, *it.Game)
			case it.Status == domain.StatusNotFound:
				fmt.Fprintf(w, "未找到：%d\n", it.ID)
			default:
				fmt.Fprintf(w, "失败：%d\n", it.ID)
			}
		}
	}
}

func printDetail(w io.Writer, d domain.Detail) {
	fmt.Fprintf(w, "%s (id=%d)\n", d.Name, d.ID)
	if d.Description != "" {
		fmt.Fprintf(w, "  %s\n", truncate(d.Description, 160))
	}
	printList(w, "平台", d.Platforms)
	printList(w, "类型", d.Genres)
	printList(w, "开发", d.Developers)
	printList(w, "发行", d.Publishers)
	for _, r := range []domain.Region{domain.RegionNA, domain.RegionEU, domain.RegionJP} {
		if v, ok := d.ReleaseDates[r]; ok {
			fmt.Fprintf(w, "  %s: %s\n", r, v)
		}
	}
	for _, row := range d.Gameplays.Single {
		fmt.Fprintf(w, "  %-16s avg=%s median=%s\n", deref(row.Type), deref(row.Average), deref(row.Median))
	}
}

func printList(w io.Writer, label string, xs []string) {
	if len(xs) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", label, strings.Join(xs, ", "))
}

func formatDurations(g domain.Summary) string {
	var b strings.Builder
	for _, m := range domain.PlayModes {
		h, ok := g.Duration(m)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s=%s", m, formatHours(h))
	}
	return b.String()
}

// formatHours 输出 "8.5h"；最多两位小数，去掉末尾的 0。
func formatHours(h float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", h), "0")
	return strings.TrimSuffix(s, ".") + "h"
}

func deref(p *string) string {
	if p == nil {
		return "--"
	}
	return *p
}

func formatProxy(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "off"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "on (" + truncate(raw, 120) + ")"
	}
	auth := "off"
	if u.User != nil {
		auth = "on"
	}
	return fmt.Sprintf("on (%s://%s, auth=%s)", u.Scheme, u.Host, auth)
}

// truncate 按字符（rune）截断，不会切开多字节字符。
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func formatShortDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
