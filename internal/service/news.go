package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/iWorld-y/rokey_news/internal/biz"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
)

// Operation names.
const (
	OperationSearchNews = "/rokey.news.v1.News/SearchNews"
	OperationHeadlines  = "/rokey.news.v1.News/Headlines"
	OperationAnalyze    = "/rokey.news.v1.News/Analyze"
	OperationStatus     = "/rokey.news.v1.News/Status"
)

const analyzeFailedMessage = "AI 분석에 실패했습니다."

// NewsResponse /api/news 与 /api/headlines 的响应
type NewsResponse struct {
	Success bool             `json:"success"`
	Data    []enrich.Article `json:"data"`
	Message string           `json:"message"`
}

// AnalyzeRequest /api/analyze 的请求体
type AnalyzeRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	OpenAIKey string `json:"openai_key"`
}

// AnalyzeResponse /api/analyze 的响应
type AnalyzeResponse struct {
	Success         bool   `json:"success"`
	SummaryKo       string `json:"summary_ko"`
	SummaryOriginal string `json:"summary_original"`
	Positive        int    `json:"positive"`
	Negative        int    `json:"negative"`
	Sentiment       string `json:"sentiment"`
	Message         string `json:"message"`
}

// StatusResponse /api/status 的响应
type StatusResponse struct {
	HasDefaultNewsKey   bool   `json:"hasDefaultNewsKey"`
	HasDefaultOpenAIKey bool   `json:"hasDefaultOpenAIKey"`
	HasUserNewsKey      bool   `json:"hasUserNewsKey"`
	HasUserOpenAIKey    bool   `json:"hasUserOpenAIKey"`
	NewsKeyValid        bool   `json:"newsKeyValid"`
	OpenAIKeyValid      bool   `json:"openaiKeyValid"`
	Message             string `json:"message"`
}

type NewsService struct {
	news     *biz.NewsUseCase
	analysis *biz.AnalysisUseCase
	log      *log.Helper
}

func NewNewsService(news *biz.NewsUseCase, analysis *biz.AnalysisUseCase, logger log.Logger) *NewsService {
	return &NewsService{
		news:     news,
		analysis: analysis,
		log:      log.NewHelper(log.With(logger, "module", "service/news")),
	}
}

// SearchNews GET /api/news
func (s *NewsService) SearchNews(ctx http.Context) error {
	q := ctx.Query()
	pageSize, err := intParam(q, "page_size", 10)
	if err != nil {
		return err
	}
	translate, err := boolParam(q, "translate", true)
	if err != nil {
		return err
	}
	params := &biz.SearchParams{
		Query:     q.Get("q"),
		Category:  stringParam(q, "category", "all"),
		Language:  stringParam(q, "language", "en"),
		PageSize:  pageSize,
		APIKey:    q.Get("api_key"),
		Translate: translate,
	}

	http.SetOperation(ctx, OperationSearchNews)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.news.Search(ctx, req.(*biz.SearchParams))
	})
	out, err := h(ctx, params)
	if err != nil {
		return err
	}
	articles := out.([]enrich.Article)
	return ctx.Result(200, &NewsResponse{Success: true, Data: articles, Message: biz.FoundMessage(len(articles))})
}

// Headlines GET /api/headlines
func (s *NewsService) Headlines(ctx http.Context) error {
	q := ctx.Query()
	pageSize, err := intParam(q, "page_size", 5)
	if err != nil {
		return err
	}
	params := &biz.HeadlinesParams{
		Country:  stringParam(q, "country", "us"),
		Category: stringParam(q, "category", "general"),
		PageSize: pageSize,
		APIKey:   q.Get("api_key"),
	}

	http.SetOperation(ctx, OperationHeadlines)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.news.Headlines(ctx, req.(*biz.HeadlinesParams))
	})
	out, err := h(ctx, params)
	if err != nil {
		return err
	}
	return ctx.Result(200, &NewsResponse{Success: true, Data: out.([]enrich.Article)})
}

// Analyze POST /api/analyze
func (s *NewsService) Analyze(ctx http.Context) error {
	var in AnalyzeRequest
	if err := ctx.Bind(&in); err != nil {
		return errors.BadRequest("INVALID_BODY", "요청 본문을 해석할 수 없습니다.").WithCause(err)
	}

	http.SetOperation(ctx, OperationAnalyze)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		r := req.(*AnalyzeRequest)
		return s.analysis.Analyze(ctx, &biz.AnalyzeParams{
			Title:   r.Title,
			Content: r.Content,
			URL:     r.URL,
			LLMKey:  r.OpenAIKey,
		})
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return ctx.Result(200, analyzeResponse(out.(*enrich.AnalysisOutcome)))
}

// Status GET /api/status
func (s *NewsService) Status(ctx http.Context) error {
	q := ctx.Query()
	http.SetOperation(ctx, OperationStatus)
	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.news.Status(ctx, q.Get("news_api_key"), q.Get("openai_key")), nil
	})
	out, err := h(ctx, nil)
	if err != nil {
		return err
	}
	st := out.(*biz.Status)
	return ctx.Result(200, &StatusResponse{
		HasDefaultNewsKey:   st.HasDefaultNewsKey,
		HasDefaultOpenAIKey: st.HasDefaultLLMKey,
		HasUserNewsKey:      st.HasUserNewsKey,
		HasUserOpenAIKey:    st.HasUserLLMKey,
		NewsKeyValid:        st.NewsKeyValid,
		OpenAIKeyValid:      st.LLMKeyValid,
		Message:             st.Message,
	})
}

func analyzeResponse(out *enrich.AnalysisOutcome) *AnalyzeResponse {
	resp := &AnalyzeResponse{
		Positive:  out.Result.Positive,
		Negative:  out.Result.Negative,
		Sentiment: out.Result.Sentiment,
	}
	switch out.Status {
	case enrich.AnalysisParsed:
		resp.Success = true
		resp.SummaryKo = out.Result.Summary
	case enrich.AnalysisInsufficient:
		resp.Message = out.Result.Summary
	default:
		resp.Message = analyzeFailedMessage
	}
	return resp
}

func stringParam(q url.Values, key, def string) string {
	if v := strings.TrimSpace(q.Get(key)); v != "" {
		return v
	}
	return def
}

func intParam(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.BadRequest("INVALID_PARAM", key+" 값이 올바르지 않습니다.").WithCause(err)
	}
	return n, nil
}

func boolParam(q url.Values, key string, def bool) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.BadRequest("INVALID_PARAM", key+" 값이 올바르지 않습니다.").WithCause(err)
	}
	return b, nil
}
