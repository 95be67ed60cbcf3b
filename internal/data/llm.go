package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/biz"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/llm"
)

type llmRepo struct {
	data *Data
	log  *log.Helper
}

func NewLLMRepo(data *Data, logger log.Logger) biz.LLMRepo {
	return &llmRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/llm")),
	}
}

func (r *llmRepo) Translator() enrich.Translator {
	return r.data.defaultTranslator()
}

// Analyzer 用户 key 每次新建客户端，调用方负责 release
func (r *llmRepo) Analyzer(ctx context.Context, key string) (enrich.Completer, func(), error) {
	if key == "" || key == r.data.llmConf.ApiKey {
		if r.data.analyzer == nil {
			return nil, nil, biz.ErrLLMKeyMissing
		}
		return r.data.analyzer, func() {}, nil
	}

	c, err := r.data.newCompleter(ctx, key, r.data.analyzeMaxTokens)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Close(); err != nil {
			r.log.Warnf("close llm client failed: %v", err)
		}
	}, nil
}

func (r *llmRepo) HasDefaultKey() bool {
	return r.data.llmConf.ApiKey != ""
}

func (r *llmRepo) KeyLooksValid(key string) bool {
	if key == "" {
		key = r.data.llmConf.ApiKey
	}
	return llm.LooksValidKey(r.data.llmConf.Provider, key)
}
