package httpx

import (
	"errors"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTimeout  = 20 * time.Second
	DefaultRetryMax = 2

	// RequestIDHeader 标记每个出站请求，便于把 stderr 诊断与站点侧日志对上。
	RequestIDHeader = "X-Request-Id"
)

// Transport 把“UA 池 + 请求 ID + 有界重试”固化为统一策略。
//
// 设计目标：provider 只负责“定位页面 + 解析 HTML”，不关心网络策略细节。
type Transport struct {
	Base http.RoundTripper

	ua *uaPool

	// RetryMax 表示最大重试次数（不含首次尝试）。例如 2 表示最多 3 次尝试。
	RetryMax int
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}

	// 只对“可重放”的请求做重试：GET/HEAD 且无 body。搜索是 POST，不重试。
	canRetry := (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
	max := t.RetryMax
	if max < 0 || !canRetry {
		max = 0
	}

	reqID := req.Header.Get(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	var lastErr error
	for attempt := 0; attempt <= max; attempt++ {
		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" && t.ua != nil {
			r.Header.Set("User-Agent", t.ua.random())
		}
		r.Header.Set(RequestIDHeader, reqID)

		resp, err := t.Base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if req.Context().Err() != nil {
			// ctx 已取消：不再重试，直接返回最后错误。
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// Options 是构造 client 的网络策略。
type Options struct {
	ProxyURL string
	Timeout  time.Duration
	RetryMax int
}

// NewClient 构造用于站点页面抓取的 HTTP client。
//
// 规则：
// - ProxyURL 非空：走代理，且禁用 keep-alive（每请求新连接）
// - 内置 UA 池：每个请求随机 UA
// - 有界重试 + 总超时（Timeout<=0 时用 DefaultTimeout）
func NewClient(opts Options) (*http.Client, error) {
	base := &http.Transport{
		Proxy:                 nil,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
	}

	if proxyURL := strings.TrimSpace(opts.ProxyURL); proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, err
		}
		base.Proxy = http.ProxyURL(u)
		base.DisableKeepAlives = true
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Transport: &Transport{
			Base:     base,
			ua:       globalUA,
			RetryMax: opts.RetryMax,
		},
		Timeout: timeout,
	}, nil
}

type uaPool struct {
	mu  sync.Mutex
	rnd *rand.Rand
	uas []string
}

func (p *uaPool) random() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uas[p.rnd.Intn(len(p.uas))]
}

var globalUA = newUAPool()

func newUAPool() *uaPool {
	uas := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	}
	return &uaPool{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		uas: uas,
	}
}
