package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-shiori/go-readability"
	"github.com/iWorld-y/rokey_news/internal/biz"
)

type articleRepo struct {
	log *log.Helper
}

func NewArticleRepo(logger log.Logger) biz.ArticleRepo {
	return &articleRepo{log: log.NewHelper(log.With(logger, "module", "data/article"))}
}

// FetchText 抓取网页并用 readability 提取正文
func (r *articleRepo) FetchText(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remain := time.Until(deadline); remain < timeout {
			timeout = remain
		}
	}

	article, err := readability.FromURL(url, timeout)
	if err != nil {
		return "", fmt.Errorf("readability %s failed: %w", url, err)
	}
	text := strings.Join(strings.Fields(article.TextContent), " ")
	r.log.Debugf("fetched %d bytes of text from %s", len(text), url)
	return text, nil
}
