package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// NewLimiter 按每分钟请求数和突发量创建限流器，rpm <= 0 时返回 nil
func NewLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

type limitedCompleter struct {
	CloseableCompleter
	limiter *rate.Limiter
}

// WithLimiter 在每次调用前等待限流器，limiter 为 nil 时原样返回
func WithLimiter(c CloseableCompleter, limiter *rate.Limiter) CloseableCompleter {
	if limiter == nil {
		return c
	}
	return &limitedCompleter{CloseableCompleter: c, limiter: limiter}
}

func (c *limitedCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait failed: %w", err)
	}
	return c.CloseableCompleter.Complete(ctx, system, prompt)
}
