package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testBatch() []Pending {
	return []Pending{
		{Article: Article{ID: 1, Title: "A", Summary: "B", Keywords: []string{}}},
		{Article: Article{ID: 2, Title: "C", Summary: "D", Keywords: []string{}}},
	}
}

func TestMergeTranslations(t *testing.T) {
	batch := testBatch()
	results := []TranslationResult{{ID: 1, TitleKo: strPtr("가"), SummaryKo: strPtr("나")}}

	merged := MergeTranslations(batch, results)
	require.Len(t, merged, 2)

	first, ok := merged[0].(Translated)
	require.True(t, ok)
	assert.Equal(t, Original{Title: "A", Summary: "B"}, first.Original)

	out := Articles(merged)
	assert.Equal(t, "가", out[0].Title)
	assert.Equal(t, "나", out[0].Summary)
	assert.Equal(t, "A", out[0].TitleOriginal)
	assert.Equal(t, "B", out[0].SummaryOriginal)

	_, pending := merged[1].(Pending)
	assert.True(t, pending)
	assert.Equal(t, batch[1].Article, out[1])
}

func TestMergeTranslations_NoOp(t *testing.T) {
	want := []Article{testBatch()[0].Article, testBatch()[1].Article}

	for name, results := range map[string][]TranslationResult{
		"nil":        nil,
		"empty":      {},
		"unknown id": {{ID: 99, TitleKo: strPtr("x")}},
		"missing id": {{TitleKo: strPtr("x"), SummaryKo: strPtr("y")}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, Articles(MergeTranslations(testBatch(), results)))
		})
	}
}

func TestMergeTranslations_PartialFields(t *testing.T) {
	merged := Articles(MergeTranslations(testBatch(), []TranslationResult{
		{ID: 1, TitleKo: strPtr("제목")},
		{ID: 2, SummaryKo: strPtr("")},
	}))

	assert.Equal(t, "제목", merged[0].Title)
	assert.Equal(t, "B", merged[0].Summary)
	assert.Equal(t, "A", merged[0].TitleOriginal)

	assert.Equal(t, "C", merged[1].Title)
	assert.Equal(t, "", merged[1].Summary)
	assert.Equal(t, "D", merged[1].SummaryOriginal)
}

func TestMergeTranslations_LastDuplicateWins(t *testing.T) {
	merged := Articles(MergeTranslations(testBatch(), []TranslationResult{
		{ID: 1, TitleKo: strPtr("first")},
		{ID: 1, TitleKo: strPtr("second")},
	}))

	assert.Equal(t, "second", merged[0].Title)
}

func TestParseTranslations(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", `[{"id": 1, "title_ko": "가", "summary_ko": "나"}]`},
		{"json fence", "```json\n[{\"id\": 1, \"title_ko\": \"가\", \"summary_ko\": \"나\"}]\n```"},
		{"bare fence", "  ```\n[{\"id\": 1, \"title_ko\": \"가\", \"summary_ko\": \"나\"}]```  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTranslations(tt.text)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, 1, got[0].ID)
			assert.Equal(t, "가", *got[0].TitleKo)
			assert.Equal(t, "나", *got[0].SummaryKo)
		})
	}
}

func TestParseTranslations_Malformed(t *testing.T) {
	for _, text := range []string{"", "번역 결과입니다", `{"id": 1}`, "```json\n[{\"id\": \"one\"}]\n```"} {
		_, err := ParseTranslations(text)
		assert.Error(t, err, text)
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "[]", StripCodeFence("```json\n[]\n```"))
	assert.Equal(t, "[]", StripCodeFence("```\n[]\n```"))
	assert.Equal(t, "[]", StripCodeFence(" [] "))
	assert.Equal(t, "text ```", StripCodeFence("text ```"))
}
