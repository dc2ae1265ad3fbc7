// Package main provides the entry point for the radiator server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/karidea/pr.radiator/internal/config"
	"github.com/karidea/pr.radiator/internal/github"
	"github.com/karidea/pr.radiator/internal/health"
	"github.com/karidea/pr.radiator/internal/middleware"
	"github.com/karidea/pr.radiator/internal/poller"
	"github.com/karidea/pr.radiator/internal/radiator/router"
	radiatorservice "github.com/karidea/pr.radiator/internal/radiator/service"
	settingsmodel "github.com/karidea/pr.radiator/internal/settings/model"
	settingsrepo "github.com/karidea/pr.radiator/internal/settings/repository"
	"github.com/karidea/pr.radiator/pkg/logger"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	db, err := gorm.Open(sqlite.Open(cfg.Store.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		zlog.Fatalw("failed to open settings store", "path", cfg.Store.Path, "error", err)
	}
	if err := db.AutoMigrate(&settingsmodel.Repository{}); err != nil {
		zlog.Fatalw("failed to migrate settings store", "error", err)
	}

	client, err := github.NewClient(cfg.GitHub, zlog)
	if err != nil {
		zlog.Fatalw("failed to create github client", "error", err)
	}

	settings := settingsrepo.New(db, zlog)
	svc := radiatorservice.New(client, cfg.GitHub, zlog)
	p := poller.New(svc, settings, cfg.Poller, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go p.Run(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))

	router.RegisterRoutes(r, p, settings, zlog)
	r.GET("/healthz", health.New(db, zlog).Check)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("server starting", "addr", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
}
