package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aylamich/portfolio/internal/config"
	"github.com/aylamich/portfolio/internal/content"
	"github.com/aylamich/portfolio/internal/logging"
	"github.com/aylamich/portfolio/internal/prefstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	table, err := content.Default()
	if err != nil {
		logger.Fatal("load content", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefs, closePrefs := openPrefs(ctx, cfg, logger)
	defer closePrefs()

	r, err := newRouter(&app{cfg: cfg, logger: logger, table: table, prefs: prefs})
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("prefs", cfg.PrefsBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// openPrefs picks the preference backend. A database that cannot be opened
// is not fatal: preferences fall back to cookies.
func openPrefs(ctx context.Context, cfg config.Config, logger *zap.Logger) (prefstore.KV, func()) {
	switch cfg.PrefsBackend {
	case config.BackendMemory:
		return prefstore.NewMemory(), func() {}
	case config.BackendSQLite:
		store, err := prefstore.OpenSQLite(ctx, cfg.DBPath, logger)
		if err != nil {
			logger.Warn("preference database unavailable, using cookies", zap.Error(err))
			return nil, func() {}
		}
		go store.RunCleanup(ctx, cfg.PrefsRetention, cfg.CleanupInterval)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("close preference database", zap.Error(err))
			}
		}
	}
	return nil, func() {}
}
