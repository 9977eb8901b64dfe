package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-compare/internal/api"
	"product-compare/internal/config"
	"product-compare/internal/logger"
	"product-compare/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// CONFIG_FILE is optional; defaults plus environment overrides are enough to run.
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"), os.Getenv("ENV_FILE"))
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := session.NewStore(session.Options{
		TTL:             cfg.Sessions.TTL,
		CleanupInterval: cfg.Sessions.CleanupInterval,
		DefaultLanguage: cfg.Language(),
	}, logger.Named(baseLogger, "sessions"))
	defer store.Close()

	router, err := api.NewRouter(cfg, store, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("env", cfg.Server.Env),
			zap.String("default_language", string(cfg.Language())))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
