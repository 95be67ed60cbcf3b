package server

import (
	"embed"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/gorilla/handlers"
	"github.com/iWorld-y/rokey_news/internal/conf"
	"github.com/iWorld-y/rokey_news/internal/service"
)

const defaultTimeout = 90 * time.Second

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, s *service.NewsService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.Filter(handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		)),
	}
	timeout := defaultTimeout
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		timeout = conf.Duration(c.Http.Timeout, defaultTimeout)
	}
	// 请求上下文的超时需要覆盖翻译耗时
	opts = append(opts, http.Timeout(timeout))

	srv := http.NewServer(opts...)
	RegisterNewsHTTPServer(srv, s)

	// 前端单页
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		content, err := assets.ReadFile("assets/index.html")
		if err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	return srv
}

// RegisterNewsHTTPServer 注册 JSON 接口
func RegisterNewsHTTPServer(srv *http.Server, s *service.NewsService) {
	r := srv.Route("/")
	r.GET("/api/news", s.SearchNews)
	r.GET("/api/headlines", s.Headlines)
	r.POST("/api/analyze", s.Analyze)
	r.GET("/api/status", s.Status)
}
