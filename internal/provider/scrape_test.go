package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/John-Robertt/hltb/internal/domain"
)

type stubProvider struct {
	fetchErr error
	parseErr error

	html   []byte
	result domain.SearchResult
	detail domain.Detail

	fetchCalls int
	parseCalls int
	lastID     int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) FetchSearch(ctx context.Context, q domain.Query, c *http.Client) ([]byte, string, error) {
	p.fetchCalls++
	if p.fetchErr != nil {
		return nil, "", p.fetchErr
	}
	return p.html, "https://example.test/search_results?page=1", nil
}

func (p *stubProvider) ParseSearch(html []byte) domain.SearchResult {
	p.parseCalls++
	return p.result
}

func (p *stubProvider) FetchDetail(ctx context.Context, id int, c *http.Client) ([]byte, string, error) {
	p.fetchCalls++
	p.lastID = id
	if p.fetchErr != nil {
		return nil, "", p.fetchErr
	}
	return p.html, "https://example.test/game?id=1", nil
}

func (p *stubProvider) ParseDetail(html []byte) (domain.Detail, error) {
	p.parseCalls++
	if p.parseErr != nil {
		return domain.Detail{}, p.parseErr
	}
	return p.detail, nil
}

func TestFind_ReturnsParsedResult(t *testing.T) {
	p := &stubProvider{
		html:   []byte("<html/>"),
		result: domain.SearchResult{Total: 1, Games: []domain.Summary{{ID: 7, Name: "Celeste"}}},
	}

	res, err := Find(context.Background(), p, domain.Query{Search: "celeste"}, nil)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if res.Total != 1 || len(res.Games) != 1 || res.Games[0].ID != 7 {
		t.Fatalf("结果不符合预期：%+v", res)
	}
}

func TestFind_FetchErrorIsWrapped(t *testing.T) {
	cause := errors.New("connection reset")
	p := &stubProvider{fetchErr: cause}

	_, err := Find(context.Background(), p, domain.Query{}, nil)
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("期望 *Error，实际=%T %v", err, err)
	}
	if pe.Stage != "fetch" || pe.Provider != "stub" {
		t.Fatalf("期望 stage=fetch provider=stub，实际=%+v", pe)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望可 Unwrap 到原始错误")
	}
	if p.parseCalls != 0 {
		t.Fatalf("抓取失败时不应解析，parseCalls=%d", p.parseCalls)
	}
}

func TestFind_NilProvider(t *testing.T) {
	if _, err := Find(context.Background(), nil, domain.Query{}, nil); err == nil {
		t.Fatalf("期望错误")
	}
}

func TestGet_Found(t *testing.T) {
	p := &stubProvider{html: []byte("<html/>"), detail: domain.Detail{ID: 966, Name: "Bayonetta"}}

	d, ok, err := Get(context.Background(), p, 966, nil)
	if err != nil || !ok {
		t.Fatalf("期望找到，实际 ok=%v err=%v", ok, err)
	}
	if d.ID != 966 || d.Name != "Bayonetta" {
		t.Fatalf("详情不符合预期：%+v", d)
	}
	if p.lastID != 966 {
		t.Fatalf("期望请求 id=966，实际=%d", p.lastID)
	}
}

func TestGet_NotFoundStatus(t *testing.T) {
	p := &stubProvider{fetchErr: &HTTPStatusError{URL: "https://example.test/game?id=1", StatusCode: http.StatusNotFound}}

	_, ok, err := Get(context.Background(), p, 1, nil)
	if err != nil {
		t.Fatalf("404 不应返回错误：%v", err)
	}
	if ok {
		t.Fatalf("期望 ok=false")
	}
}

func TestGet_ParseFailureIsNotFound(t *testing.T) {
	p := &stubProvider{html: []byte(""), parseErr: errors.New("no document")}

	_, ok, err := Get(context.Background(), p, 1, nil)
	if err != nil || ok {
		t.Fatalf("期望 ok=false err=nil，实际 ok=%v err=%v", ok, err)
	}
}

func TestGet_ServerErrorIsFetchError(t *testing.T) {
	p := &stubProvider{fetchErr: &HTTPStatusError{StatusCode: http.StatusBadGateway, RequestID: "r-1"}}

	_, ok, err := Get(context.Background(), p, 1, nil)
	if ok {
		t.Fatalf("期望 ok=false")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Stage != "fetch" {
		t.Fatalf("期望 stage=fetch 的 *Error，实际=%v", err)
	}
	var he *HTTPStatusError
	if !errors.As(err, &he) || he.RequestID != "r-1" {
		t.Fatalf("期望保留 request id，实际=%v", err)
	}
}

func TestGet_ZeroIDIsAllowed(t *testing.T) {
	p := &stubProvider{html: []byte("<html/>")}

	if _, _, err := Get(context.Background(), p, 0, nil); err != nil {
		t.Fatalf("id=0 不应报错：%v", err)
	}
	if p.fetchCalls != 1 {
		t.Fatalf("期望抓取一次，实际=%d", p.fetchCalls)
	}
}

func TestGet_NegativeIDRejected(t *testing.T) {
	p := &stubProvider{}

	if _, _, err := Get(context.Background(), p, -1, nil); err == nil {
		t.Fatalf("期望错误")
	}
	if p.fetchCalls != 0 {
		t.Fatalf("负数 id 不应发请求")
	}
}

func TestHTTPStatusError_Message(t *testing.T) {
	e := &HTTPStatusError{StatusCode: 503, RequestID: "abc"}
	if got := e.Error(); got != "HTTP 503 request_id=abc" {
		t.Fatalf("错误信息不符合预期：%q", got)
	}
	if IsNotFound(e) {
		t.Fatalf("503 不是 404")
	}
}
