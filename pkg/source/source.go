package source

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/iWorld-y/rokey_news/pkg/enrich"
)

// ErrMissingKey 没有可用的新闻 API key
var ErrMissingKey = errors.New("news api key is missing")

// Provider 定义新闻来源的通用接口
type Provider interface {
	Everything(ctx context.Context, req *Request) ([]enrich.RawArticle, error)
	TopHeadlines(ctx context.Context, req *HeadlinesRequest) ([]enrich.RawArticle, error)
	// Probe 用最小请求验证 key 是否可用
	Probe(ctx context.Context, apiKey string) error
}

// Request 关键词检索请求
type Request struct {
	Query    string   // 组合后的检索式，例如 "(q) AND (a OR b)"
	Keyword  string   // 用户输入的原始关键词
	Terms    []string // 分类词，任意命中即可
	Language string
	From     time.Time
	SortBy   string
	PageSize int
	APIKey   string // 为空时使用默认 key
}

// HeadlinesRequest 头条请求
type HeadlinesRequest struct {
	Country  string
	Category string // 提供方的头条分类
	Terms    []string
	PageSize int
	APIKey   string
}

// APIError 提供方明确返回的错误
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news api error (status %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news api error (status %d): %s", e.StatusCode, e.Message)
}

// IsTimeout 判断错误是否由超时引起
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
