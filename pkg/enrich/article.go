package enrich

// Source 新闻源信息
type Source struct {
	Name string `json:"name"`
}

// RawArticle 新闻提供方返回的原始文章，任意字段都可能缺失
type RawArticle struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Source      *Source `json:"source"`
	URL         string  `json:"url"`
	URLToImage  string  `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
}

// Article 对外输出的文章结构，字段名与前端约定一致
type Article struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Content         string   `json:"content"`
	Source          string   `json:"source"`
	URL             string   `json:"url"`
	Image           string   `json:"image"`
	PublishedAt     string   `json:"publishedAt"`
	Category        string   `json:"category"`
	Keywords        []string `json:"keywords"`
	TitleOriginal   string   `json:"title_original,omitempty"`
	SummaryOriginal string   `json:"summary_original,omitempty"`
}

// TranslationUnit 发送给翻译方的文章片段
type TranslationUnit struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// TranslationResult 翻译方返回的单条结果，title_ko / summary_ko 缺省时为 nil
type TranslationResult struct {
	ID        int     `json:"id"`
	TitleKo   *string `json:"title_ko"`
	SummaryKo *string `json:"summary_ko"`
}

// Sentiment labels.
const (
	SentimentPositive = "긍정적"
	SentimentNegative = "부정적"
	SentimentNeutral  = "중립"
	SentimentFailed   = "분석 실패"
)

// AnalysisResult 情感分析结果
type AnalysisResult struct {
	Summary   string `json:"summary"`
	Positive  int    `json:"positive"`
	Negative  int    `json:"negative"`
	Sentiment string `json:"sentiment"`
}

// DeriveSentiment 根据正负百分比得出情感标签
func DeriveSentiment(positive, negative int) string {
	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
