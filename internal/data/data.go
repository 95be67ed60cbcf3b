package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/conf"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/llm"
	"github.com/iWorld-y/rokey_news/pkg/source"
	"github.com/iWorld-y/rokey_news/pkg/source/factory"
	"golang.org/x/time/rate"
)

const (
	defaultTranslateMaxTokens = 2000
	defaultAnalyzeMaxTokens   = 500
)

// Data 持有新闻来源与默认 key 的大模型客户端
type Data struct {
	provider     source.Provider
	providerName string
	newsKey      string

	llmConf    *conf.LLM
	limiter    *rate.Limiter
	translator llm.CloseableCompleter // 默认 key，可能为 nil
	analyzer   llm.CloseableCompleter // 默认 key，可能为 nil

	translateMaxTokens int
	analyzeMaxTokens   int
}

func NewData(cn *conf.News, cl *conf.LLM, ce *conf.Enrich, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(log.With(logger, "module", "data"))
	if cn == nil {
		cn = &conf.News{}
	}
	if cl == nil {
		cl = &conf.LLM{}
	}
	if ce == nil {
		ce = &conf.Enrich{}
	}

	provider, err := factory.NewProvider(factory.Config{
		Provider: cn.Provider,
		BaseURL:  cn.BaseUrl,
		APIKey:   cn.ApiKey,
		Feeds:    cn.Feeds,
		Logf:     helper.Warnf,
	})
	if err != nil {
		return nil, nil, err
	}

	d := &Data{
		provider:           provider,
		providerName:       cn.Provider,
		newsKey:            cn.ApiKey,
		llmConf:            cl,
		translateMaxTokens: orDefault(int(ce.TranslateMaxTokens), defaultTranslateMaxTokens),
		analyzeMaxTokens:   orDefault(int(ce.AnalyzeMaxTokens), defaultAnalyzeMaxTokens),
	}
	if cl.Concurrency != nil {
		d.limiter = llm.NewLimiter(int(cl.Concurrency.Rpm), int(cl.Concurrency.Qps))
	}

	if cl.ApiKey != "" {
		ctx := context.Background()
		if d.translator, err = d.newCompleter(ctx, cl.ApiKey, d.translateMaxTokens); err != nil {
			return nil, nil, err
		}
		if d.analyzer, err = d.newCompleter(ctx, cl.ApiKey, d.analyzeMaxTokens); err != nil {
			d.translator.Close()
			return nil, nil, err
		}
	} else {
		helper.Warn("no default llm api key, translation is disabled")
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if d.translator != nil {
			d.translator.Close()
		}
		if d.analyzer != nil {
			d.analyzer.Close()
		}
	}
	return d, cleanup, nil
}

func (d *Data) newCompleter(ctx context.Context, key string, maxTokens int) (llm.CloseableCompleter, error) {
	c, err := llm.NewCompleter(ctx, llm.Config{
		Provider:  d.llmConf.Provider,
		BaseURL:   d.llmConf.BaseUrl,
		APIKey:    key,
		Model:     d.llmConf.Model,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, err
	}
	return llm.WithLimiter(c, d.limiter), nil
}

// defaultTranslator 没有默认 key 时返回 nil 接口
func (d *Data) defaultTranslator() enrich.Translator {
	if d.translator == nil {
		return nil
	}
	return enrich.NewLLMTranslator(d.translator)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
