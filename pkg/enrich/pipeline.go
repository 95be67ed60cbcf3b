package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	unknownSource         = "Unknown"
	summaryFromContentLen = 200
	analysisTextLen       = 2000
	minAnalysisTextLen    = 50

	// InsufficientContentMessage 分析内容过短时返回的提示
	InsufficientContentMessage = "분석할 내용이 충분하지 않습니다."
)

// Completer LLM 文本补全接口
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Translator 批量翻译接口
type Translator interface {
	Translate(ctx context.Context, units []TranslationUnit) ([]TranslationResult, error)
}

// BuildBatch 为原始文章分配从 1 开始的 id，映射字段并提取关键词
func BuildBatch(raws []RawArticle, category string) []Pending {
	batch := make([]Pending, 0, len(raws))
	for i, raw := range raws {
		summary := raw.Description
		if summary == "" {
			summary = truncateRunes(raw.Content, summaryFromContentLen)
		}
		source := unknownSource
		if raw.Source != nil && raw.Source.Name != "" {
			source = raw.Source.Name
		}

		batch = append(batch, Pending{Article: Article{
			ID:          i + 1,
			Title:       raw.Title,
			Summary:     summary,
			Content:     raw.Content,
			Source:      source,
			URL:         raw.URL,
			Image:       raw.URLToImage,
			PublishedAt: raw.PublishedAt,
			Category:    category,
			Keywords:    ExtractKeywords(raw.Title),
		}})
	}
	return batch
}

// TranslationStatus 批次翻译的结果状态
type TranslationStatus int

const (
	TranslationSkipped TranslationStatus = iota
	TranslationApplied
	TranslationFailed
)

func (s TranslationStatus) String() string {
	switch s {
	case TranslationApplied:
		return "applied"
	case TranslationFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// BatchResult 一次编排的输出
type BatchResult struct {
	Items       []Enriched
	Translation TranslationStatus
	Err         error
}

// Articles returns the batch in provider order.
func (r BatchResult) Articles() []Article {
	return Articles(r.Items)
}

// Translate 尽力翻译整个批次；translator 为 nil 或调用失败时返回未翻译的批次
func Translate(ctx context.Context, t Translator, batch []Pending) BatchResult {
	untouched := make([]Enriched, 0, len(batch))
	for _, p := range batch {
		untouched = append(untouched, p)
	}
	if t == nil || len(batch) == 0 {
		return BatchResult{Items: untouched, Translation: TranslationSkipped}
	}

	units := make([]TranslationUnit, 0, len(batch))
	for _, p := range batch {
		units = append(units, p.Unit())
	}

	results, err := t.Translate(ctx, units)
	if err != nil {
		return BatchResult{Items: untouched, Translation: TranslationFailed, Err: err}
	}
	return BatchResult{Items: MergeTranslations(batch, results), Translation: TranslationApplied}
}

const translateSystem = "당신은 전문 뉴스 번역가입니다. 영어 뉴스를 자연스러운 한국어로 번역합니다. JSON 형식으로만 응답하세요."

const translatePrompt = `다음 뉴스 기사 제목과 요약을 한국어로 번역해주세요.
자연스러운 한국어로 번역하되, 뉴스 헤드라인 스타일을 유지해주세요.

[번역할 내용]
%s

[응답 형식]
정확히 다음 JSON 형식으로만 응답해주세요 (다른 텍스트 없이):
[
  {"id": 1, "title_ko": "번역된 제목", "summary_ko": "번역된 요약"},
  ...
]
`

type llmTranslator struct {
	completer Completer
}

// NewLLMTranslator 基于 LLM 的翻译实现
func NewLLMTranslator(c Completer) Translator {
	return &llmTranslator{completer: c}
}

func (t *llmTranslator) Translate(ctx context.Context, units []TranslationUnit) ([]TranslationResult, error) {
	payload, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal units failed: %w", err)
	}

	resp, err := t.completer.Complete(ctx, translateSystem, fmt.Sprintf(translatePrompt, payload))
	if err != nil {
		return nil, err
	}
	return ParseTranslations(resp)
}

// AnalysisStatus 单篇分析的结果状态
type AnalysisStatus int

const (
	AnalysisParsed AnalysisStatus = iota
	AnalysisInsufficient
	AnalysisUnavailable
	AnalysisFailed
)

func (s AnalysisStatus) String() string {
	switch s {
	case AnalysisParsed:
		return "parsed"
	case AnalysisInsufficient:
		return "insufficient"
	case AnalysisUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// AnalysisOutcome 分析结果及其状态，Result 始终是完整的
type AnalysisOutcome struct {
	Result AnalysisResult
	Status AnalysisStatus
	Err    error
}

const analyzeSystem = "당신은 뉴스 분석 전문가입니다. 한국어로 명확하고 간결하게 응답해주세요."

const analyzePrompt = `다음 뉴스 기사를 분석해주세요.

[뉴스 내용]
%s

[요청사항]
1. 핵심 내용을 한국어로 3줄 요약해주세요.
2. 감성 분석을 수행하여 긍정/부정 비율(%%)을 알려주세요. (합계 100%%)

[응답 형식] (정확히 이 형식으로 응답해주세요)
요약:
- (첫 번째 요약)
- (두 번째 요약)
- (세 번째 요약)

감성분석:
긍정: (숫자)%%
부정: (숫자)%%
`

// AnalysisText 拼接标题与正文并截断到 2000 字符
func AnalysisText(title, content string) string {
	return truncateRunes(title+". "+content, analysisTextLen)
}

// Analyze 对单篇文章做摘要与情感分析，任何失败都降级为默认结果
func Analyze(ctx context.Context, c Completer, title, content string) AnalysisOutcome {
	text := AnalysisText(title, content)
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minAnalysisTextLen {
		return AnalysisOutcome{
			Result: AnalysisResult{
				Summary:   InsufficientContentMessage,
				Positive:  defaultPercent,
				Negative:  defaultPercent,
				Sentiment: SentimentNeutral,
			},
			Status: AnalysisInsufficient,
		}
	}

	if c == nil {
		return AnalysisOutcome{Result: defaultAnalysis(), Status: AnalysisUnavailable}
	}

	resp, err := c.Complete(ctx, analyzeSystem, fmt.Sprintf(analyzePrompt, text))
	if err != nil {
		result := defaultAnalysis()
		result.Sentiment = SentimentFailed
		return AnalysisOutcome{Result: result, Status: AnalysisFailed, Err: err}
	}
	return AnalysisOutcome{Result: ParseAnalysis(resp), Status: AnalysisParsed}
}

func defaultAnalysis() AnalysisResult {
	return AnalysisResult{Positive: defaultPercent, Negative: defaultPercent, Sentiment: SentimentNeutral}
}
