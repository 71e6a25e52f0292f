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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/core/logger"
	"go-gin-user-table/internal/core/server"
	"go-gin-user-table/internal/repo"
	"go-gin-user-table/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	l, flush := logger.Build(logger.FromConfig(cfg.Log))
	defer flush()

	src, closeSrc, err := repo.NewSource(cfg, l)
	if err != nil {
		l.Fatal("user source", zap.Error(err))
	}
	defer closeSrc()

	r := router.NewAPIEngine(l, cfg.App.HTTP, cfg.Table.PageSize, src)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		logger.ToStdLogger(l, zapcore.WarnLevel),
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	l.Info("user table api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("table", baseURL+"/api/v1/users/table"),
		zap.Int("page_size", cfg.Table.PageSize),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("user table api start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Warn("shutdown", zap.Error(err))
	}
	l.Info("user table api stopped gracefully")
}
