package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/source"
)

// DefaultBaseURL NewsAPI v2 地址
const DefaultBaseURL = "https://newsapi.org/v2"

const statusOK = "ok"

// Client NewsAPI 客户端
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient 创建 NewsAPI 客户端，apiKey 作为请求未携带 key 时的默认值
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  http.DefaultClient,
	}
}

var _ source.Provider = (*Client)(nil)

// Response NewsAPI 响应，status 非 ok 时 code/message 有值
type Response struct {
	Status       string              `json:"status"`
	TotalResults int                 `json:"totalResults"`
	Articles     []enrich.RawArticle `json:"articles"`
	Code         string              `json:"code"`
	Message      string              `json:"message"`
}

// Everything implements source.Provider
func (c *Client) Everything(ctx context.Context, req *source.Request) ([]enrich.RawArticle, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	if req.Language != "" {
		params.Set("language", req.Language)
	}
	if req.SortBy != "" {
		params.Set("sortBy", req.SortBy)
	}
	if req.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(req.PageSize))
	}
	if !req.From.IsZero() {
		params.Set("from", req.From.Format(time.DateOnly))
	}

	resp, err := c.get(ctx, "/everything", params, req.APIKey)
	if err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// TopHeadlines implements source.Provider
func (c *Client) TopHeadlines(ctx context.Context, req *source.HeadlinesRequest) ([]enrich.RawArticle, error) {
	params := url.Values{}
	if req.Country != "" {
		params.Set("country", req.Country)
	}
	if req.Category != "" {
		params.Set("category", req.Category)
	}
	if req.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(req.PageSize))
	}

	resp, err := c.get(ctx, "/top-headlines", params, req.APIKey)
	if err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Probe 请求一条美国头条来验证 key
func (c *Client) Probe(ctx context.Context, apiKey string) error {
	_, err := c.TopHeadlines(ctx, &source.HeadlinesRequest{Country: "us", PageSize: 1, APIKey: apiKey})
	return err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, apiKey string) (*Response, error) {
	if apiKey == "" {
		apiKey = c.apiKey
	}
	if apiKey == "" {
		return nil, source.ErrMissingKey
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("X-Api-Key", apiKey)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	var newsResp Response
	if err := json.Unmarshal(body, &newsResp); err != nil {
		if res.StatusCode != http.StatusOK {
			return nil, &source.APIError{StatusCode: res.StatusCode, Message: string(body)}
		}
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	if newsResp.Status != statusOK {
		msg := newsResp.Message
		if msg == "" {
			msg = "뉴스를 가져오는데 실패했습니다."
		}
		return nil, &source.APIError{StatusCode: res.StatusCode, Code: newsResp.Code, Message: msg}
	}

	return &newsResp, nil
}
