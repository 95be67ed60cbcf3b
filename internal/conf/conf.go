package conf

import "time"

type Bootstrap struct {
	Server *Server `json:"server"`
	News   *News   `json:"news"`
	Llm    *LLM    `json:"llm"`
	Enrich *Enrich `json:"enrich"`
	Log    *Log    `json:"log"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// News 新闻来源配置
type News struct {
	Provider     string   `json:"provider"` // newsapi | rss
	BaseUrl      string   `json:"base_url"`
	ApiKey       string   `json:"api_key"`
	Feeds        []string `json:"feeds"`
	Timeout      string   `json:"timeout"`
	ProbeTimeout string   `json:"probe_timeout"`
	LookBack     string   `json:"look_back"`
}

// LLM 大模型配置
type LLM struct {
	Provider    string       `json:"provider"` // openai | gemini
	BaseUrl     string       `json:"base_url"`
	ApiKey      string       `json:"api_key"`
	Model       string       `json:"model"`
	Concurrency *Concurrency `json:"concurrency"`
}

// Concurrency 对大模型的出站调用限流，rpm 为 0 时不限制
type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

// Enrich 翻译与分析相关配置
type Enrich struct {
	TranslateTimeout   string `json:"translate_timeout"`
	AnalyzeTimeout     string `json:"analyze_timeout"`
	TranslateMaxTokens int32  `json:"translate_max_tokens"`
	AnalyzeMaxTokens   int32  `json:"analyze_max_tokens"`
	FetchFullText      bool   `json:"fetch_full_text"`
	FullTextTimeout    string `json:"full_text_timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Duration 解析配置中的时长，为空或非法时返回默认值
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
