package main

import (
	"context"
	"log"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/core/database"
	"go-gin-user-table/internal/core/logger"
	"go-gin-user-table/internal/repo"
)

// seed creates the users table and loads the sample accounts into it.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	l, flush := logger.Build(logger.FromConfig(cfg.Log))
	defer flush()

	cfg.DB.AutoMigrate = false
	db, err := repo.OpenDB(cfg, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		l.Fatal("automigrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := repo.NewUserRepo(db).Seed(ctx, repo.SampleUsers())
	if err != nil {
		l.Fatal("seed failed", zap.Error(err))
	}
	l.Info("seed done", zap.String("driver", cfg.DB.Driver), zap.Int64("inserted", n))
}
