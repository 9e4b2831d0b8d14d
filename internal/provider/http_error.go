package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPStatusError 表示站点返回了非 2xx 的 HTTP 状态码。
// provider.Fetch* 可以返回该错误，让边界层区分“不存在”（404）与其它失败。
type HTTPStatusError struct {
	URL        string
	StatusCode int
	RequestID  string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	id := strings.TrimSpace(e.RequestID)
	if id == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d request_id=%s", e.StatusCode, id)
}

// IsNotFound 报告 err 是否是站点的 404。
func IsNotFound(err error) bool {
	var he *HTTPStatusError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

// RequestError 是请求未拿到 HTTP 响应（超时、TLS、连接失败等）或读取响应体失败时的错误。
// 它携带出站请求的 request id，诊断输出据此与 HTTPStatusError 保持一致。
type RequestError struct {
	RequestID string
	Err       error
}

func (e *RequestError) Error() string {
	if strings.TrimSpace(e.RequestID) == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v request_id=%s", e.Err, e.RequestID)
}

func (e *RequestError) Unwrap() error { return e.Err }

// RequestID 从 err 链中取出 request id；没有时返回空串。
func RequestID(err error) string {
	var he *HTTPStatusError
	if errors.As(err, &he) {
		return strings.TrimSpace(he.RequestID)
	}
	var re *RequestError
	if errors.As(err, &re) {
		return strings.TrimSpace(re.RequestID)
	}
	return ""
}
