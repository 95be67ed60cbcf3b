package biz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/conf"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/source"
)

const (
	defaultNewsTimeout      = 10 * time.Second
	defaultProbeTimeout     = 5 * time.Second
	defaultTranslateTimeout = 60 * time.Second
	defaultLookBack         = 7 * 24 * time.Hour

	maxSearchPageSize   = 20
	maxHeadlinePageSize = 10
)

// NewsRepo 新闻来源
type NewsRepo interface {
	Search(ctx context.Context, req *source.Request) ([]enrich.RawArticle, error)
	Headlines(ctx context.Context, req *source.HeadlinesRequest) ([]enrich.RawArticle, error)
	Probe(ctx context.Context, apiKey string) error
	HasDefaultKey() bool
	RequiresKey() bool
}

// LLMRepo 大模型客户端
type LLMRepo interface {
	// Translator 返回使用默认 key 的翻译器，没有默认 key 时返回 nil
	Translator() enrich.Translator
	// Analyzer 返回分析用的补全客户端，key 为空时使用默认 key
	Analyzer(ctx context.Context, key string) (enrich.Completer, func(), error)
	HasDefaultKey() bool
	// KeyLooksValid 按格式检查 key，key 为空时检查默认 key
	KeyLooksValid(key string) bool
}

// SearchParams 关键词新闻检索参数
type SearchParams struct {
	Query     string
	Category  string
	Language  string
	PageSize  int
	APIKey    string
	Translate bool
}

// HeadlinesParams 头条参数
type HeadlinesParams struct {
	Country  string
	Category string
	PageSize int
	APIKey   string
}

// Status 新闻与大模型 key 的可用状态
type Status struct {
	HasDefaultNewsKey bool
	HasDefaultLLMKey  bool
	HasUserNewsKey    bool
	HasUserLLMKey     bool
	NewsKeyValid      bool
	LLMKeyValid       bool
	Message           string
}

type NewsUseCase struct {
	news NewsRepo
	llm  LLMRepo
	log  *log.Helper

	newsTimeout      time.Duration
	probeTimeout     time.Duration
	translateTimeout time.Duration
	lookBack         time.Duration
	now              func() time.Time
}

func NewNewsUseCase(news NewsRepo, llm LLMRepo, cn *conf.News, ce *conf.Enrich, logger log.Logger) *NewsUseCase {
	if cn == nil {
		cn = &conf.News{}
	}
	if ce == nil {
		ce = &conf.Enrich{}
	}
	return &NewsUseCase{
		news:             news,
		llm:              llm,
		log:              log.NewHelper(log.With(logger, "module", "biz/news")),
		newsTimeout:      conf.Duration(cn.Timeout, defaultNewsTimeout),
		probeTimeout:     conf.Duration(cn.ProbeTimeout, defaultProbeTimeout),
		translateTimeout: conf.Duration(ce.TranslateTimeout, defaultTranslateTimeout),
		lookBack:         conf.Duration(cn.LookBack, defaultLookBack),
		now:              time.Now,
	}
}

// Search 检索新闻并按需翻译，翻译失败不影响返回
func (uc *NewsUseCase) Search(ctx context.Context, p *SearchParams) ([]enrich.Article, error) {
	if p.PageSize < 1 || p.PageSize > maxSearchPageSize {
		return nil, ErrInvalidPageSize
	}
	if err := uc.checkKey(p.APIKey); err != nil {
		return nil, err
	}

	req := &source.Request{
		Query:    source.ComposeQuery(p.Query, p.Category),
		Keyword:  strings.TrimSpace(p.Query),
		Terms:    source.Terms(p.Category),
		Language: p.Language,
		From:     uc.now().Add(-uc.lookBack),
		SortBy:   "publishedAt",
		PageSize: p.PageSize,
		APIKey:   p.APIKey,
	}

	fetchCtx, cancel := context.WithTimeout(ctx, uc.newsTimeout)
	raws, err := uc.news.Search(fetchCtx, req)
	cancel()
	if err != nil {
		uc.log.Errorf("search news failed, query=%q: %v", req.Query, err)
		return nil, newsError(err)
	}

	batch := enrich.BuildBatch(raws, p.Category)
	if !p.Translate {
		return enrich.Articles(toEnriched(batch)), nil
	}

	translateCtx, cancel := context.WithTimeout(ctx, uc.translateTimeout)
	defer cancel()
	result := enrich.Translate(translateCtx, uc.llm.Translator(), batch)
	switch result.Translation {
	case enrich.TranslationFailed:
		uc.log.Warnf("translate %d articles failed, serving originals: %v", len(batch), result.Err)
	case enrich.TranslationApplied:
		uc.log.Infof("translated %d articles", len(batch))
	}
	return result.Articles(), nil
}

// Headlines 获取头条，不做翻译
func (uc *NewsUseCase) Headlines(ctx context.Context, p *HeadlinesParams) ([]enrich.Article, error) {
	if p.PageSize < 1 || p.PageSize > maxHeadlinePageSize {
		return nil, ErrInvalidPageSize
	}
	if err := uc.checkKey(p.APIKey); err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, uc.newsTimeout)
	defer cancel()
	raws, err := uc.news.Headlines(fetchCtx, &source.HeadlinesRequest{
		Country:  p.Country,
		Category: source.HeadlineCategory(p.Category),
		Terms:    source.Terms(p.Category),
		PageSize: p.PageSize,
		APIKey:   p.APIKey,
	})
	if err != nil {
		uc.log.Errorf("fetch headlines failed, country=%s category=%s: %v", p.Country, p.Category, err)
		return nil, newsError(err)
	}

	return enrich.Articles(toEnriched(enrich.BuildBatch(raws, p.Category))), nil
}

// Status 检查 key 状态；新闻 key 通过一次最小请求验证，大模型 key 只检查格式
func (uc *NewsUseCase) Status(ctx context.Context, newsKey, llmKey string) *Status {
	st := &Status{
		HasDefaultNewsKey: uc.news.HasDefaultKey(),
		HasDefaultLLMKey:  uc.llm.HasDefaultKey(),
		HasUserNewsKey:    newsKey != "",
		HasUserLLMKey:     llmKey != "",
	}

	if newsKey != "" || st.HasDefaultNewsKey || !uc.news.RequiresKey() {
		probeCtx, cancel := context.WithTimeout(ctx, uc.probeTimeout)
		err := uc.news.Probe(probeCtx, newsKey)
		cancel()
		if err != nil {
			uc.log.Warnf("news key probe failed: %v", err)
		}
		st.NewsKeyValid = err == nil
	}

	if llmKey != "" || st.HasDefaultLLMKey {
		st.LLMKeyValid = uc.llm.KeyLooksValid(llmKey)
	}

	messages := make([]string, 0, 2)
	if st.NewsKeyValid {
		messages = append(messages, "NewsAPI 연결됨")
	} else {
		messages = append(messages, "NewsAPI 키 필요")
	}
	if st.LLMKeyValid || st.HasDefaultLLMKey {
		messages = append(messages, "AI 분석 가능")
	} else {
		messages = append(messages, "OpenAI 키 필요 (AI 분석)")
	}
	st.Message = strings.Join(messages, " | ")
	return st
}

// FoundMessage 检索成功时的提示
func FoundMessage(n int) string {
	return fmt.Sprintf("%d개의 뉴스를 찾았습니다.", n)
}

func (uc *NewsUseCase) checkKey(userKey string) error {
	if userKey == "" && uc.news.RequiresKey() && !uc.news.HasDefaultKey() {
		return ErrNewsKeyMissing
	}
	return nil
}

func toEnriched(batch []enrich.Pending) []enrich.Enriched {
	out := make([]enrich.Enriched, 0, len(batch))
	for _, p := range batch {
		out = append(out, p)
	}
	return out
}
