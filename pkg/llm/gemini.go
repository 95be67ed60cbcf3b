package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiCompleter struct {
	client *genai.Client
	cfg    Config
}

func newGeminiCompleter(ctx context.Context, cfg Config) (*geminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiCompleter{client: client, cfg: cfg}, nil
}

// Complete 以 system 作为 SystemInstruction 生成内容，拼接所有文本片段
func (c *geminiCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.cfg.Model)
	m.SetTemperature(c.cfg.Temperature)
	if c.cfg.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(c.cfg.MaxTokens))
	}
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return sb.String(), nil
}

func (c *geminiCompleter) Close() error {
	return c.client.Close()
}
