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

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(config.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := postgres.Open(config.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	if err = postgres.Migrate(db); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}
	zapLogger.Info("database ready", zap.String("driver", config.Database.Driver))

	app, err := cmd.NewCompositionRoot(config, db, zapLogger)
	if err != nil {
		zapLogger.Fatal("building application", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("starting jobs", zap.Error(err))
	}

	e := newEcho()
	if err = app.CreateHTTPServer().Register(e); err != nil {
		zapLogger.Fatal("registering routes", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	jobManager.StopAll()

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	zapLogger.Info("server stopped gracefully")
}

// newEcho silences echo's own logger; requests are logged through zap.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	return e
}
