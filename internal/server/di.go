package server

import (
	"github.com/google/wire"
	"github.com/iWorld-y/rokey_news/internal/biz"
	"github.com/iWorld-y/rokey_news/internal/data"
	"github.com/iWorld-y/rokey_news/internal/service"
)

// ProviderSet 是新闻服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewNewsRepo,
	data.NewLLMRepo,
	data.NewArticleRepo,

	// UseCase providers
	biz.NewNewsUseCase,
	biz.NewAnalysisUseCase,

	// Service providers
	service.NewNewsService,
)
