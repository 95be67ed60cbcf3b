package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeQuery(t *testing.T) {
	tests := []struct {
		q, category string
		want        string
	}{
		{"", "all", "news"},
		{"", "unknown", "news"},
		{"  ", "all", "news"},
		{"nvidia", "all", "nvidia"},
		{"", "tech", "technology OR AI OR software OR startup"},
		{"nvidia", "tech", "(nvidia) AND (technology OR AI OR software OR startup)"},
		{"", "world", "international OR global OR world news"},
		{"fed", "economy", "(fed) AND (economy OR finance OR stock OR business)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ComposeQuery(tt.q, tt.category), "%q/%q", tt.q, tt.category)
	}
}

func TestHeadlineCategory(t *testing.T) {
	want := map[string]string{
		"tech":     "technology",
		"economy":  "business",
		"politics": "politics",
		"world":    "general",
		"sports":   "sports",
		"all":      "general",
		"science":  "general",
		"":         "general",
	}
	for in, out := range want {
		assert.Equal(t, out, HeadlineCategory(in), in)
	}
}

func TestLoadCategories_Invalid(t *testing.T) {
	_, err := LoadCategories([]byte("categories: [unterminated"))
	assert.Error(t, err)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("request failed: %w", context.DeadlineExceeded)))
	assert.True(t, IsTimeout(fmt.Errorf("request failed: %w", timeoutErr{})))
	assert.False(t, IsTimeout(errors.New("connection refused")))
	assert.False(t, IsTimeout(&APIError{StatusCode: 401, Message: "bad key"}))
}
