package factory

import (
	"fmt"

	"github.com/iWorld-y/rokey_news/pkg/source"
	"github.com/iWorld-y/rokey_news/pkg/source/newsapi"
	"github.com/iWorld-y/rokey_news/pkg/source/rss"
)

// Provider names.
const (
	ProviderNewsAPI = "newsapi"
	ProviderRSS     = "rss"
)

// Config 新闻来源配置
type Config struct {
	Provider string
	BaseURL  string
	APIKey   string
	Feeds    []string
	Logf     func(format string, args ...interface{})
}

// NewProvider 根据配置创建新闻来源，provider 为空时使用 newsapi
func NewProvider(cfg Config) (source.Provider, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderNewsAPI
	}

	switch provider {
	case ProviderNewsAPI:
		// key 可以由请求提供，这里不强制
		return newsapi.NewClient(cfg.BaseURL, cfg.APIKey), nil

	case ProviderRSS:
		if len(cfg.Feeds) == 0 {
			return nil, fmt.Errorf("rss feeds are missing")
		}
		return rss.NewClient(cfg.Feeds, cfg.Logf), nil

	default:
		return nil, fmt.Errorf("unknown news provider: %s", provider)
	}
}

// RequiresKey 该来源是否需要 API key
func RequiresKey(provider string) bool {
	return provider == "" || provider == ProviderNewsAPI
}
