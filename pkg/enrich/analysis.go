package enrich

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	defaultPercent     = 50
	maxSummaryBullets  = 3
	fallbackSummaryLen = 500
)

// LineClass 报告中单行的分类，一行可以同时属于多个类别
type LineClass uint8

const (
	LineBullet LineClass = 1 << iota
	LinePositive
	LineNegative

	LineOther LineClass = 0
)

// Has reports whether c carries flag.
func (c LineClass) Has(flag LineClass) bool {
	return c&flag != 0
}

// ClassifyLine 对已去除首尾空白的一行进行分类
func ClassifyLine(line string) LineClass {
	class := LineOther
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		class |= LineBullet
	}
	if strings.Contains(line, "%") {
		if strings.Contains(line, "긍정") {
			class |= LinePositive
		}
		if strings.Contains(line, "부정") {
			class |= LineNegative
		}
	}
	return class
}

// ParsePercent 取第一个 % 之前、最后一个 : 之后的数字
func ParsePercent(line string) (int, bool) {
	head, _, _ := strings.Cut(line, "%")
	if i := strings.LastIndex(head, ":"); i >= 0 {
		head = head[i+1:]
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, head)
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseAnalysis 将 LLM 返回的自由文本解析为结构化结果，无法识别的字段保留默认值
func ParseAnalysis(text string) AnalysisResult {
	result := AnalysisResult{
		Positive:  defaultPercent,
		Negative:  defaultPercent,
		Sentiment: SentimentNeutral,
	}

	var bullets []string
	for _, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(raw)
		class := ClassifyLine(line)

		if class.Has(LineBullet) {
			bullets = append(bullets, line)
		}
		if class.Has(LinePositive) {
			if n, ok := ParsePercent(line); ok {
				result.Positive = n
			}
		}
		if class.Has(LineNegative) {
			if n, ok := ParsePercent(line); ok {
				result.Negative = n
			}
		}
	}

	if len(bullets) > 0 {
		if len(bullets) > maxSummaryBullets {
			bullets = bullets[:maxSummaryBullets]
		}
		result.Summary = strings.Join(bullets, "\n")
	} else {
		result.Summary = truncateRunes(text, fallbackSummaryLen)
	}

	result.Sentiment = DeriveSentiment(result.Positive, result.Negative)
	return result
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
