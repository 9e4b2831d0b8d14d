package hltb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/net/html/charset"

	"github.com/John-Robertt/hltb/internal/domain"
	"github.com/John-Robertt/hltb/internal/extract"
	"github.com/John-Robertt/hltb/internal/infra/httpx"
	providerx "github.com/John-Robertt/hltb/internal/provider"
	"github.com/John-Robertt/hltb/internal/query"
)

// Provider 实现 HowLongToBeat 的页面抓取与 HTML 解析。
//
// 约束：
// - 搜索是 POST 表单（参数顺序固定），页码走 URL 参数
// - 详情是 GET ?id=<id>
// - Parse* 是纯函数，直接委托给 extract
type Provider struct {
	// BaseURL 允许指定站点地址（例如镜像或测试服务器）；为空时使用 domain.DefaultBaseURL。
	BaseURL    string
	SearchPath string
	DetailPath string
}

func (Provider) Name() string { return "hltb" }

func (p Provider) baseURL() string {
	u := strings.TrimSpace(p.BaseURL)
	if u == "" {
		return domain.DefaultBaseURL
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

func (p Provider) endpoint(path, fallback string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		path = fallback
	}
	return p.baseURL() + path
}

func (p Provider) extractor() extract.Extractor {
	return extract.Extractor{BaseURL: p.baseURL()}
}

// FetchSearch 提交搜索表单：POST <base>/search_results?page=<N>
func (p Provider) FetchSearch(ctx context.Context, q domain.Query, c *http.Client) ([]byte, string, error) {
	if c == nil {
		return nil, "", errors.New("http client 不能为空")
	}
	pageURL := p.endpoint(p.SearchPath, domain.DefaultSearchPath) + "?page=" + strconv.Itoa(q.PageOrFirst())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pageURL, strings.NewReader(query.Encode(q)))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	b, err := do(c, req)
	return b, pageURL, err
}

// FetchDetail 直接进入详情页：GET <base>/game?id=<id>
func (p Provider) FetchDetail(ctx context.Context, id int, c *http.Client) ([]byte, string, error) {
	if c == nil {
		return nil, "", errors.New("http client 不能为空")
	}
	pageURL := p.endpoint(p.DetailPath, domain.DefaultDetailPath) + "?id=" + url.QueryEscape(strconv.Itoa(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", err
	}
	b, err := do(c, req)
	return b, pageURL, err
}

func (p Provider) ParseSearch(html []byte) domain.SearchResult {
	return p.extractor().Results(string(html))
}

func (p Provider) ParseDetail(html []byte) (domain.Detail, error) {
	return p.extractor().Detail(string(html))
}

// do 发送请求并返回 UTF-8 的 body。
// 非 2xx 返回 *HTTPStatusError；没拿到响应或读 body 失败返回 *RequestError。两者都带 request id。
func do(c *http.Client, req *http.Request) ([]byte, error) {
	reqID := uuid.NewString()
	req.Header.Set(httpx.RequestIDHeader, reqID)

	resp, err := c.Do(req)
	if err != nil {
		return nil, &providerx.RequestError{RequestID: reqID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &providerx.HTTPStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, RequestID: reqID}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providerx.RequestError{RequestID: reqID, Err: err}
	}
	return toUTF8(data, resp.Header.Get("Content-Type")), nil
}

// toUTF8 按 Content-Type 与 <meta charset> 探测编码并转为 UTF-8。
// 空 body 原样返回（交给解析器判定为“无结果/不存在”）；解码失败时退回原始字节。
func toUTF8(data []byte, contentType string) []byte {
	if len(data) == 0 {
		return data
	}
	enc, _, certain := charset.DetermineEncoding(data, contentType)
	// 探测只看前 1024 字节；没有明确声明时，整体是合法 UTF-8 就不转码。
	if !certain && utf8.Valid(data) {
		return data
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return data
	}
	return out
}
