package app

import (
	"context"
	"errors"
	"net/http"
)

// HTTPService 把商城 API 的 http.Server 包成可托管的 Service
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 在给定地址上承载商城路由
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		name: "storefront-http",
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	if s == nil || s.name == "" {
		return "storefront-http"
	}
	return s.name
}

// Start 监听并阻塞直至服务关闭
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅停机，超时由上层 Runner 控制
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
