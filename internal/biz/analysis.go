package biz

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/conf"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
)

const (
	defaultAnalyzeTimeout  = 30 * time.Second
	defaultFullTextTimeout = 15 * time.Second

	// 正文短于该长度且提供了 url 时尝试抓取全文
	fullTextThreshold = 500
)

// ArticleRepo 抓取原文正文
type ArticleRepo interface {
	FetchText(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// AnalyzeParams 单篇分析参数
type AnalyzeParams struct {
	Title   string
	Content string
	URL     string
	LLMKey  string
}

type AnalysisUseCase struct {
	llm      LLMRepo
	articles ArticleRepo
	log      *log.Helper

	analyzeTimeout  time.Duration
	fetchFullText   bool
	fullTextTimeout time.Duration
}

func NewAnalysisUseCase(llm LLMRepo, articles ArticleRepo, ce *conf.Enrich, logger log.Logger) *AnalysisUseCase {
	if ce == nil {
		ce = &conf.Enrich{}
	}
	return &AnalysisUseCase{
		llm:             llm,
		articles:        articles,
		log:             log.NewHelper(log.With(logger, "module", "biz/analysis")),
		analyzeTimeout:  conf.Duration(ce.AnalyzeTimeout, defaultAnalyzeTimeout),
		fetchFullText:   ce.FetchFullText,
		fullTextTimeout: conf.Duration(ce.FullTextTimeout, defaultFullTextTimeout),
	}
}

// Analyze 摘要并做情感分析；除缺少 key 外的失败都体现在返回的 outcome 里
func (uc *AnalysisUseCase) Analyze(ctx context.Context, p *AnalyzeParams) (*enrich.AnalysisOutcome, error) {
	if p.LLMKey == "" && !uc.llm.HasDefaultKey() {
		return nil, ErrLLMKeyMissing
	}

	content := p.Content
	if uc.shouldFetch(p) {
		text, err := uc.articles.FetchText(ctx, p.URL, uc.fullTextTimeout)
		switch {
		case err != nil:
			uc.log.Warnf("fetch full text failed, url=%s: %v", p.URL, err)
		case utf8.RuneCountInString(strings.TrimSpace(text)) > utf8.RuneCountInString(strings.TrimSpace(content)):
			content = text
		}
	}

	analyzeCtx, cancel := context.WithTimeout(ctx, uc.analyzeTimeout)
	defer cancel()

	completer, release, err := uc.llm.Analyzer(analyzeCtx, p.LLMKey)
	if err != nil {
		uc.log.Errorf("create llm client failed: %v", err)
		completer, release = nil, func() {}
	}
	defer release()

	out := enrich.Analyze(analyzeCtx, completer, p.Title, content)
	if out.Status == enrich.AnalysisUnavailable {
		// 客户端创建失败按调用失败处理
		out.Status = enrich.AnalysisFailed
		out.Result.Sentiment = enrich.SentimentFailed
		out.Err = err
	}
	if out.Err != nil {
		uc.log.Warnf("analyze %q failed: %v", p.Title, out.Err)
	}
	return &out, nil
}

func (uc *AnalysisUseCase) shouldFetch(p *AnalyzeParams) bool {
	return uc.fetchFullText && uc.articles != nil && p.URL != "" &&
		utf8.RuneCountInString(strings.TrimSpace(p.Content)) < fullTextThreshold
}
