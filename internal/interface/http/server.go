package http

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the standard http.Server with the timeouts the app config
// provides.
type Server struct {
	httpServer *http.Server
}

func NewServer(addr string, handler http.Handler, timeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
