package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/core/logger"
	"go-gin-user-table/internal/feature/table"
	"go-gin-user-table/internal/repo"
	"go-gin-user-table/internal/transport/console"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the yaml config")
	pageSize := flag.Int("page-size", 0, "rows per page (overrides table.pageSize)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *pageSize > 0 {
		cfg.Table.PageSize = *pageSize
	}
	// warn and up only, the table owns stdout
	l, flush := logger.Build(logger.Options{Level: "warn", Rotate: logger.FromConfig(cfg.Log).Rotate})
	defer flush()

	src, closeSrc, err := repo.NewSource(cfg, l)
	if err != nil {
		l.Fatal("user source", zap.Error(err))
	}
	defer closeSrc()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t := table.Load(ctx, src, table.WithPageSize(cfg.Table.PageSize), table.WithLogger(l))
	cancel()

	if err := console.Run(os.Stdin, os.Stdout, t); err != nil {
		l.Error("console", zap.Error(err))
	}
}
