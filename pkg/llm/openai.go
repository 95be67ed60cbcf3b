package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type openAICompleter struct {
	chatModel model.ChatModel
	opts      []model.Option
}

func newOpenAICompleter(ctx context.Context, cfg Config) (*openAICompleter, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model failed: %w", err)
	}

	opts := []model.Option{model.WithTemperature(cfg.Temperature)}
	if cfg.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(cfg.MaxTokens))
	}
	return &openAICompleter{chatModel: chatModel, opts: opts}, nil
}

// Complete 发送 system + user 两条消息，返回模型回复正文
func (c *openAICompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: system},
		{Role: schema.User, Content: prompt},
	}

	resp, err := c.chatModel.Generate(ctx, messages, c.opts...)
	if err != nil {
		return "", fmt.Errorf("llm generate failed: %w", err)
	}
	return resp.Content, nil
}

func (c *openAICompleter) Close() error { return nil }
