package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/biz"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/source"
	"github.com/iWorld-y/rokey_news/pkg/source/factory"
)

type newsRepo struct {
	data *Data
	log  *log.Helper
}

func NewNewsRepo(data *Data, logger log.Logger) biz.NewsRepo {
	return &newsRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/news")),
	}
}

func (r *newsRepo) Search(ctx context.Context, req *source.Request) ([]enrich.RawArticle, error) {
	articles, err := r.data.provider.Everything(ctx, req)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("fetched %d articles for %q", len(articles), req.Query)
	return articles, nil
}

func (r *newsRepo) Headlines(ctx context.Context, req *source.HeadlinesRequest) ([]enrich.RawArticle, error) {
	return r.data.provider.TopHeadlines(ctx, req)
}

func (r *newsRepo) Probe(ctx context.Context, apiKey string) error {
	return r.data.provider.Probe(ctx, apiKey)
}

func (r *newsRepo) HasDefaultKey() bool {
	return r.data.newsKey != ""
}

func (r *newsRepo) RequiresKey() bool {
	return factory.RequiresKey(r.data.providerName)
}
