package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"powerhack/backend/internal/config"
	"powerhack/backend/internal/httpserver"
	"powerhack/backend/internal/infrastructure/postgres"
	"powerhack/backend/internal/infrastructure/token"
	authusecase "powerhack/backend/internal/usecase/auth"
	billingusecase "powerhack/backend/internal/usecase/billing"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		logger.Fatal("failed to run database migrations", zap.Error(err))
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, cfg.JWTIssuer)

	authService := authusecase.NewService(logger, postgres.NewUserRepository(db.Pool), tokenManager)
	billingService := billingusecase.NewService(postgres.NewBillRepository(db.Pool))

	server := httpserver.NewServer(cfg, logger, authService, billingService)
	logger.Info("HTTP server listening", zap.String("addr", server.Addr()))

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("HTTP server closed")
				return
			}
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("graceful shutdown completed")
	}
}
