package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"powerhack/backend/internal/config"
	authusecase "powerhack/backend/internal/usecase/auth"
	billingusecase "powerhack/backend/internal/usecase/billing"

	"go.uber.org/zap"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer     *http.Server
	router         *http.ServeMux
	logger         *zap.Logger
	authService    *authusecase.Service
	billingService *billingusecase.Service
	allowedOrigins []string
	addr           string
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(cfg config.Config, logger *zap.Logger, authService *authusecase.Service, billingService *billingusecase.Service) *Server {
	mux := http.NewServeMux()
	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	handler := withLogging(logger, withCORS(mux, cfg.AllowedOrigins))

	srv := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
		},
		router:         mux,
		logger:         logger,
		authService:    authService,
		billingService: billingService,
		allowedOrigins: cfg.AllowedOrigins,
		addr:           addr,
	}
	srv.registerRoutes()
	return srv
}

// Start bootstraps the HTTP server on the configured address.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
