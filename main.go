package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrezeni/portfolio/internal/config"
	"github.com/andrezeni/portfolio/internal/logger"
	"github.com/andrezeni/portfolio/internal/site"
	"github.com/andrezeni/portfolio/internal/visitors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("development").Fatal("cannot load config", err)
	}
	log := logger.New(cfg.App.Env)
	log.Info("config loaded", zap.Strings("sources", cfg.Sources))
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *visitors.Store
	if cfg.Visitors.DBPath != "" {
		store, err = visitors.Open(ctx, cfg.Visitors.DBPath)
		if err != nil {
			log.Fatal("cannot open visitors db", err, zap.String("path", cfg.Visitors.DBPath))
		}
		go runRetention(ctx, store, log, time.Hour)
		log.Info("visitor tracking enabled with hashed IP addresses", zap.String("db", cfg.Visitors.DBPath))
	}

	srv, err := site.New(cfg, log, store)
	if err != nil {
		log.Fatal("cannot build server", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", httpServer.Addr), zap.Float64("lookahead", cfg.Scrollspy.Lookahead))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", err)
	}
	srv.Wait()
	if store != nil {
		if err := store.Close(); err != nil {
			log.Error("close visitors db", err)
		}
	}
}

// runRetention deletes visits older than visitors.Retention now and then every interval.
func runRetention(ctx context.Context, store *visitors.Store, log logger.Logger, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		n, err := store.Cleanup(ctx, time.Now().Add(-visitors.Retention))
		if err != nil && ctx.Err() == nil {
			log.Error("privacy cleanup failed", err)
		} else if n > 0 {
			log.Info("privacy cleanup", zap.Int64("deleted", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
