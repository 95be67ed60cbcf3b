package enrich

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Original 翻译前的标题与摘要
type Original struct {
	Title   string
	Summary string
}

// Enriched 批次中的一篇文章，只能是 Pending 或 Translated
type Enriched interface {
	Final() Article
	enriched()
}

// Pending 尚未翻译的文章，只有它可以参与翻译合并
type Pending struct {
	Article Article
}

// Final returns the article as served.
func (p Pending) Final() Article { return p.Article }

func (Pending) enriched() {}

// Unit 构造发送给翻译方的片段
func (p Pending) Unit() TranslationUnit {
	return TranslationUnit{ID: p.Article.ID, Title: p.Article.Title, Summary: p.Article.Summary}
}

// Translated 已翻译的文章及其原文
type Translated struct {
	Article  Article
	Original Original
}

// Final returns the translated article with the original text attached.
func (t Translated) Final() Article {
	a := t.Article
	a.TitleOriginal = t.Original.Title
	a.SummaryOriginal = t.Original.Summary
	return a
}

func (Translated) enriched() {}

// MergeTranslations 按 id 将翻译结果合并回文章；重复 id 以最后一条为准，未匹配的文章原样返回
func MergeTranslations(batch []Pending, results []TranslationResult) []Enriched {
	byID := make(map[int]TranslationResult, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	out := make([]Enriched, 0, len(batch))
	for _, p := range batch {
		r, ok := byID[p.Article.ID]
		if !ok {
			out = append(out, p)
			continue
		}

		t := Translated{
			Article:  p.Article,
			Original: Original{Title: p.Article.Title, Summary: p.Article.Summary},
		}
		if r.TitleKo != nil {
			t.Article.Title = *r.TitleKo
		}
		if r.SummaryKo != nil {
			t.Article.Summary = *r.SummaryKo
		}
		out = append(out, t)
	}
	return out
}

// Articles 展开批次为对外输出的文章列表
func Articles(batch []Enriched) []Article {
	out := make([]Article, 0, len(batch))
	for _, e := range batch {
		out = append(out, e.Final())
	}
	return out
}

// ParseTranslations 解析翻译方返回的 JSON 数组，允许外层包裹 markdown 代码块
func ParseTranslations(text string) ([]TranslationResult, error) {
	var results []TranslationResult
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &results); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return results, nil
}

// StripCodeFence 去掉 LLM 输出中可能存在的 ```json / ``` 包裹
func StripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
