package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-concierge-api/api/swagger"
	"github.com/noah-isme/campus-concierge-api/internal/app"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
	"github.com/noah-isme/campus-concierge-api/pkg/logger"
)

const version = "1.0.0"

// @title AI Campus Concierge API
// @version 1.0.0
// @description Natural-language and REST access to campus events, exams and placement drives
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to initialise application", zap.Error(err))
	}
	defer application.Close() //nolint:errcheck

	if cfg.Resolver.EagerInit {
		go application.WarmResolver(ctx)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           application.Router(version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", server.Addr, "env", cfg.Env, "db", cfg.Database.Driver, "resolver", cfg.Resolver.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logr.Info("server exited")
}
