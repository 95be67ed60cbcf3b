package rss

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/iWorld-y/rokey_news/pkg/enrich"
	"github.com/iWorld-y/rokey_news/pkg/source"
	"github.com/mmcdole/gofeed"
)

// Client 基于一组 RSS/Atom 订阅源的新闻来源，不需要 key
type Client struct {
	feeds []string
	logf  func(format string, args ...interface{})
}

// NewClient 创建 RSS 客户端，logf 用于记录单个订阅源失败，可为 nil
func NewClient(feeds []string, logf func(format string, args ...interface{})) *Client {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Client{feeds: feeds, logf: logf}
}

var _ source.Provider = (*Client)(nil)

type item struct {
	article   enrich.RawArticle
	published time.Time
}

// Everything 拉取所有订阅源，按关键词、分类词和时间窗口过滤，最新的在前
func (c *Client) Everything(ctx context.Context, req *source.Request) ([]enrich.RawArticle, error) {
	items, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))
	filtered := items[:0]
	for _, it := range items {
		if !req.From.IsZero() && !it.published.IsZero() && it.published.Before(req.From) {
			continue
		}
		text := strings.ToLower(it.article.Title + " " + it.article.Description)
		if keyword != "" && !strings.Contains(text, keyword) {
			continue
		}
		if !matchesAny(text, req.Terms) {
			continue
		}
		filtered = append(filtered, it)
	}
	return limit(filtered, req.PageSize), nil
}

// TopHeadlines 返回最新条目，分类词非空时按分类过滤
func (c *Client) TopHeadlines(ctx context.Context, req *source.HeadlinesRequest) ([]enrich.RawArticle, error) {
	items, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := items[:0]
	for _, it := range items {
		if matchesAny(strings.ToLower(it.article.Title+" "+it.article.Description), req.Terms) {
			filtered = append(filtered, it)
		}
	}
	return limit(filtered, req.PageSize), nil
}

// Probe 解析第一个订阅源
func (c *Client) Probe(ctx context.Context, _ string) error {
	if len(c.feeds) == 0 {
		return fmt.Errorf("no rss feeds configured")
	}
	if _, err := gofeed.NewParser().ParseURLWithContext(c.feeds[0], ctx); err != nil {
		return fmt.Errorf("parse feed %s failed: %w", c.feeds[0], err)
	}
	return nil
}

func (c *Client) fetchAll(ctx context.Context) ([]item, error) {
	if len(c.feeds) == 0 {
		return nil, fmt.Errorf("no rss feeds configured")
	}

	// gofeed.Parser 不能并发复用
	parser := gofeed.NewParser()
	var (
		items   []item
		lastErr error
		okCount int
	)
	for _, url := range c.feeds {
		feed, err := parser.ParseURLWithContext(url, ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("parse feed %s failed: %w", url, ctx.Err())
			}
			c.logf("Error parsing RSS %s: %v", url, err)
			lastErr = err
			continue
		}
		okCount++
		for _, fi := range feed.Items {
			items = append(items, convert(feed, fi))
		}
	}
	if okCount == 0 {
		return nil, fmt.Errorf("all rss feeds failed: %w", lastErr)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].published.After(items[j].published)
	})
	return items, nil
}

func convert(feed *gofeed.Feed, fi *gofeed.Item) item {
	raw := enrich.RawArticle{
		Title:       strings.TrimSpace(fi.Title),
		Description: htmlToText(fi.Description),
		Content:     htmlToText(fi.Content),
		URL:         fi.Link,
	}
	if feed.Title != "" {
		raw.Source = &enrich.Source{Name: feed.Title}
	}
	if fi.Image != nil {
		raw.URLToImage = fi.Image.URL
	} else {
		for _, enc := range fi.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") {
				raw.URLToImage = enc.URL
				break
			}
		}
	}

	var published time.Time
	switch {
	case fi.PublishedParsed != nil:
		published = *fi.PublishedParsed
	case fi.UpdatedParsed != nil:
		published = *fi.UpdatedParsed
	}
	if !published.IsZero() {
		raw.PublishedAt = published.UTC().Format(time.RFC3339)
	}
	return item{article: raw, published: published}
}

// htmlToText 把订阅源中的 HTML 片段压平为纯文本
func htmlToText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func matchesAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func limit(items []item, n int) []enrich.RawArticle {
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	out := make([]enrich.RawArticle, 0, len(items))
	for _, it := range items {
		out = append(out, it.article)
	}
	return out
}
