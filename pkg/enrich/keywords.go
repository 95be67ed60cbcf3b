package enrich

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords      = 3
	minKeywordLength = 3
)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "and": {},
	"or": {}, "but": {}, "with": {}, "as": {}, "by": {}, "from": {},
	"이": {}, "가": {}, "은": {}, "는": {}, "을": {}, "를": {}, "의": {},
	"에": {}, "에서": {}, "로": {}, "으로": {},
}

var keywordSeparators = strings.NewReplacer("-", " ", ":", " ")

// ExtractKeywords 从标题中按顺序提取最多 3 个关键词，凑满即停止扫描
func ExtractKeywords(title string) []string {
	keywords := make([]string, 0, maxKeywords)
	if title == "" {
		return keywords
	}

	for _, word := range strings.Fields(keywordSeparators.Replace(title)) {
		clean := stripNonAlnum(word)
		if utf8.RuneCountInString(clean) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[strings.ToLower(clean)]; stop {
			continue
		}
		keywords = append(keywords, clean)
		if len(keywords) >= maxKeywords {
			break
		}
	}
	return keywords
}

func stripNonAlnum(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, word)
}
