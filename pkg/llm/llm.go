package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/iWorld-y/rokey_news/pkg/enrich"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-1.5-flash"
	defaultTemperature = 0.3
)

// Config 单个补全客户端的配置
type Config struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// CloseableCompleter 持有底层连接的补全客户端
type CloseableCompleter interface {
	enrich.Completer
	Close() error
}

// NewCompleter 根据 provider 创建补全客户端，provider 为空时默认 openai
func NewCompleter(ctx context.Context, cfg Config) (CloseableCompleter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is missing")
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}

	switch provider(cfg.Provider) {
	case ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = defaultOpenAIModel
		}
		c, err := newOpenAICompleter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil

	case ProviderGemini:
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
		c, err := newGeminiCompleter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

// LooksValidKey 只按格式判断 key 是否可能有效，不发起请求
func LooksValidKey(providerName, key string) bool {
	if len(key) <= 20 {
		return false
	}
	if provider(providerName) == ProviderOpenAI {
		return strings.HasPrefix(key, "sk-")
	}
	return true
}

func provider(name string) string {
	if name == "" {
		return ProviderOpenAI
	}
	return strings.ToLower(name)
}
