package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/John-Robertt/hltb/internal/domain"
	"github.com/John-Robertt/hltb/internal/infra/httpx"
)

const (
	// ErrCodeNotFound 表示 --config 显式指定的文件不存在。
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
)

// FileName 是工作目录下默认读取的配置文件名（可选）。
const FileName = "hltb.yaml"

// maxRetry 是 retry_max 的上限；超出截断。
const maxRetry = 5

const (
	// DefaultConcurrency 是 get 多个 id 时的默认并发数。
	DefaultConcurrency = 2
	// MaxConcurrency 是 concurrency 的上限（站点对并发敏感）。
	MaxConcurrency = 8
)

// CLIArgs 只包含 CLI 暴露的配置入口，并保留“是否显式指定”的信息。
type CLIArgs struct {
	ConfigPath string

	BaseURL    string
	BaseURLSet bool

	ProxyURL    string
	ProxyURLSet bool
}

// FileConfig 对应 hltb.yaml 的解析结构。
type FileConfig struct {
	BaseURL     string       `yaml:"base_url"`
	SearchPath  string       `yaml:"search_path"`
	DetailPath  string       `yaml:"detail_path"`
	Timeout     string       `yaml:"timeout"`
	RetryMax    *int         `yaml:"retry_max"`
	Concurrency int          `yaml:"concurrency"`
	Proxy       *ProxyConfig `yaml:"proxy"`
}

type ProxyConfig struct {
	URL string `yaml:"url"`
}

// EffectiveConfig 是合并并做最小规范化后的最终配置（实现层直接消费，不再做二次默认/优先级判断）。
type EffectiveConfig struct {
	BaseURL    string
	SearchPath string
	DetailPath string

	Timeout     time.Duration
	RetryMax    int
	Concurrency int
	ProxyURL    string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s：未找到配置文件 %q", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 发现并读取配置文件，然后与 CLI 参数合并为最终配置。
//
// 发现规则（固定）：
// 1) CLI 提供 --config：必须存在
// 2) 否则尝试 <cwd>/hltb.yaml（可选，不存在就全用默认值）
//
// 覆盖优先级（固定）：
// - base_url / proxy.url：CLI > config > 默认
// - 其他字段：仅由 config 控制
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	cfgPath := filepath.Join(cwdAbs, FileName)
	required := false
	if p := strings.TrimSpace(cli.ConfigPath); p != "" {
		cfgPath = absCleanFrom(cwdAbs, p)
		required = true
	}

	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	if required && !exists {
		return EffectiveConfig{}, &Error{Code: ErrCodeNotFound, Path: cfgPath, Err: os.ErrNotExist}
	}

	return merge(cli, fc, cfgPath)
}

func merge(cli CLIArgs, fc FileConfig, cfgPath string) (EffectiveConfig, error) {
	invalid := func(err error) (EffectiveConfig, error) {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}

	baseURL := domain.DefaultBaseURL
	if cli.BaseURLSet {
		baseURL = strings.TrimSpace(cli.BaseURL)
	} else if strings.TrimSpace(fc.BaseURL) != "" {
		baseURL = strings.TrimSpace(fc.BaseURL)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return invalid(fmt.Errorf("base_url 无效：%q", baseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalid(fmt.Errorf("base_url 必须是 http/https：%q", baseURL))
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := httpx.DefaultTimeout
	if s := strings.TrimSpace(fc.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return invalid(fmt.Errorf("timeout 无效：%w", err))
		}
		if d <= 0 {
			return invalid(fmt.Errorf("timeout 必须为正数：%q", s))
		}
		timeout = d
	}

	retryMax := httpx.DefaultRetryMax
	if fc.RetryMax != nil {
		retryMax = *fc.RetryMax
	}
	// 范围 [0, 5]；超出截断。
	if retryMax < 0 {
		retryMax = 0
	}
	if retryMax > maxRetry {
		retryMax = maxRetry
	}

	concurrency := DefaultConcurrency
	if fc.Concurrency != 0 {
		if fc.Concurrency < 1 || fc.Concurrency > MaxConcurrency {
			return invalid(fmt.Errorf("concurrency 必须在 [1, %d] 内：%d", MaxConcurrency, fc.Concurrency))
		}
		concurrency = fc.Concurrency
	}

	proxyURL := ""
	if cli.ProxyURLSet {
		proxyURL = strings.TrimSpace(cli.ProxyURL)
	} else if fc.Proxy != nil {
		proxyURL = strings.TrimSpace(fc.Proxy.URL)
	}
	if proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			return invalid(fmt.Errorf("proxy.url 无效：%w", err))
		}
	}

	return EffectiveConfig{
		BaseURL:     baseURL,
		SearchPath:  pathOr(fc.SearchPath, domain.DefaultSearchPath),
		DetailPath:  pathOr(fc.DetailPath, domain.DefaultDetailPath),
		Timeout:     timeout,
		RetryMax:    retryMax,
		Concurrency: concurrency,
		ProxyURL:    proxyURL,
	}, nil
}

func pathOr(p, def string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return def
	}
	return p
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readFileConfig 读取并解析 YAML 配置文件。
// 返回值 exists 表示该文件是否存在（不存在不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
