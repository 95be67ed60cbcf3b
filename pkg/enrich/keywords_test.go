package enrich

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"empty", "", []string{}},
		{"stops after three", "Breaking: AI-powered startup raises funding", []string{"Breaking", "powered", "startup"}},
		{"stopwords skipped", "The state of the union and from where", []string{"state", "union", "where"}},
		{"stopwords case-insensitive", "FROM With AND Markets", []string{"Markets"}},
		{"punctuation stripped", "\"Hello,\" world's (biggest) deal!", []string{"Hello", "worlds", "biggest"}},
		{"korean", "삼성전자, 반도체 투자 확대 발표", []string{"삼성전자", "반도체"}},
		{"korean short tokens", "에서 으로 정부는 발표", []string{"정부는"}},
		{"digits count", "GPT-4o and 2025 roadmap", []string{"GPT", "2025", "roadmap"}},
		{"only short tokens", "AI is on", []string{}},
		{"colon split", "Update:markets:rally", []string{"Update", "markets", "rally"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.title))
		})
	}
}

func TestExtractKeywords_Invariants(t *testing.T) {
	titles := []string{
		"One two three four five six seven",
		"a an the is are was were in on at to for of and or but with as by from",
		"---:::---",
		"Ünïcödé wörds everywhere across the board",
		"이 가 은 는 을 를 의 에 에서 로 으로",
	}
	for _, title := range titles {
		got := ExtractKeywords(title)
		assert.LessOrEqual(t, len(got), 3, title)
		for _, kw := range got {
			assert.GreaterOrEqual(t, utf8.RuneCountInString(kw), 3, kw)
			_, stop := stopWords[strings.ToLower(kw)]
			assert.False(t, stop, kw)
		}
	}
}

func TestExtractKeywords_EarlyExit(t *testing.T) {
	// the fourth qualifying token is never reached
	got := ExtractKeywords("alpha beta gamma delta")
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}
