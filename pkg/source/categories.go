package source

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

// Category 一个 UI 分类的检索配置
type Category struct {
	Terms    []string `yaml:"terms"`
	Headline string   `yaml:"headline"`
}

// CategoryTable 分类表
type CategoryTable struct {
	DefaultQuery    string              `yaml:"default_query"`
	DefaultHeadline string              `yaml:"default_headline"`
	Categories      map[string]Category `yaml:"categories"`
}

var categories = mustLoadCategories(categoriesYAML)

func mustLoadCategories(data []byte) *CategoryTable {
	t, err := LoadCategories(data)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadCategories 解析分类表
func LoadCategories(data []byte) (*CategoryTable, error) {
	var t CategoryTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse categories failed: %w", err)
	}
	return &t, nil
}

// Terms 返回分类的检索词，未知分类返回 nil
func Terms(category string) []string {
	return categories.Categories[category].Terms
}

// ComposeQuery 把用户关键词与分类词组合为 "(q) AND (a OR b)"，两者皆空时返回默认检索词
func ComposeQuery(q, category string) string {
	q = strings.TrimSpace(q)
	query := q
	if terms := Terms(category); len(terms) > 0 {
		joined := strings.Join(terms, " OR ")
		if q != "" {
			query = fmt.Sprintf("(%s) AND (%s)", q, joined)
		} else {
			query = joined
		}
	}
	if query == "" {
		query = categories.DefaultQuery
	}
	return query
}

// HeadlineCategory 把 UI 分类映射为头条分类，未知分类返回默认值
func HeadlineCategory(category string) string {
	if c, ok := categories.Categories[category]; ok && c.Headline != "" {
		return c.Headline
	}
	return categories.DefaultHeadline
}
