package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/iWorld-y/rokey_news/internal/biz"
	"github.com/iWorld-y/rokey_news/internal/conf"
	"github.com/iWorld-y/rokey_news/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData_Defaults(t *testing.T) {
	d, cleanup, err := NewData(nil, nil, nil, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	news := NewNewsRepo(d, log.DefaultLogger)
	assert.False(t, news.HasDefaultKey())
	assert.True(t, news.RequiresKey())

	repo := NewLLMRepo(d, log.DefaultLogger)
	assert.Nil(t, repo.Translator())
	assert.False(t, repo.HasDefaultKey())
	assert.False(t, repo.KeyLooksValid(""))
	assert.True(t, repo.KeyLooksValid("sk-abcdefghijklmnopqrstuvwxyz"))

	_, _, err = repo.Analyzer(context.Background(), "")
	assert.ErrorIs(t, err, biz.ErrLLMKeyMissing)
}

func TestNewData_UnknownProvider(t *testing.T) {
	_, _, err := NewData(&conf.News{Provider: "gdelt"}, nil, nil, log.DefaultLogger)
	assert.Error(t, err)
}

func TestNewData_WithDefaultKeys(t *testing.T) {
	d, cleanup, err := NewData(
		&conf.News{ApiKey: "news-key"},
		&conf.LLM{ApiKey: "sk-defaultdefaultdefault", Concurrency: &conf.Concurrency{Qps: 2, Rpm: 120}},
		&conf.Enrich{AnalyzeMaxTokens: 300},
		log.DefaultLogger,
	)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, 2000, d.translateMaxTokens)
	assert.Equal(t, 300, d.analyzeMaxTokens)
	require.NotNil(t, d.limiter)
	assert.Equal(t, 2, d.limiter.Burst())

	assert.True(t, NewNewsRepo(d, log.DefaultLogger).HasDefaultKey())

	repo := NewLLMRepo(d, log.DefaultLogger)
	assert.NotNil(t, repo.Translator())
	assert.True(t, repo.KeyLooksValid(""))

	c, release, err := repo.Analyzer(context.Background(), "")
	require.NoError(t, err)
	assert.Same(t, d.analyzer, c)
	release()

	c, release, err = repo.Analyzer(context.Background(), "sk-useruseruseruseruser")
	require.NoError(t, err)
	assert.NotSame(t, d.analyzer, c)
	release()
}

func TestNewsRepo_RSS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Feed</title>
			<item><title>Baseball season opens</title><description>sports</description><pubDate>Wed, 08 Jan 2025 09:00:00 GMT</pubDate></item>
		</channel></rss>`))
	}))
	defer srv.Close()

	d, cleanup, err := NewData(&conf.News{Provider: "rss", Feeds: []string{srv.URL}}, nil, nil, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	repo := NewNewsRepo(d, log.DefaultLogger)
	assert.False(t, repo.RequiresKey())
	require.NoError(t, repo.Probe(context.Background(), ""))

	articles, err := repo.Search(context.Background(), &source.Request{Terms: source.Terms("sports")})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Feed", articles[0].Source.Name)
}

func TestArticleRepo_FetchText(t *testing.T) {
	body := "<html><head><title>Story</title></head><body><article><h1>Story</h1>" +
		strings.Repeat("<p>The central bank kept interest rates unchanged on Wednesday, citing stable inflation.</p>", 10) +
		"</article></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	repo := NewArticleRepo(log.DefaultLogger)
	text, err := repo.FetchText(context.Background(), srv.URL+"/story", 5*time.Second)
	require.NoError(t, err)
	assert.Contains(t, text, "central bank kept interest rates unchanged")
	assert.NotContains(t, text, "\n")
}

func TestArticleRepo_FetchTextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewArticleRepo(log.DefaultLogger).FetchText(ctx, "http://127.0.0.1:1", time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
