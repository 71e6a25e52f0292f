package repo

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-user-table/internal/core/cache"
	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/core/database"
	"go-gin-user-table/internal/domain"
)

// OpenDB opens the configured database and migrates the users table when asked to.
func OpenDB(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
		l.Info("automigrate done")
	}
	return db, nil
}

// NewSource builds the user source named by cfg.Source.Kind, wrapped in the
// Redis cache when a TTL is configured. cleanup releases what it opened.
func NewSource(cfg *config.Config, l *zap.Logger) (src domain.UserSource, cleanup func(), err error) {
	cleanup = func() {}
	switch cfg.Source.Kind {
	case "db":
		db, err := OpenDB(cfg, l)
		if err != nil {
			return nil, cleanup, err
		}
		if sqlDB, err := db.DB(); err == nil {
			cleanup = func() { _ = sqlDB.Close() }
		}
		src = NewUserRepo(db)
		l.Info("user source: database", zap.String("driver", cfg.DB.Driver))
	case "http":
		src = NewHTTPSource(cfg.Source.URL, time.Duration(cfg.Source.TimeoutSec)*time.Second)
		l.Info("user source: http", zap.String("url", cfg.Source.URL))
	default:
		src = NewStaticSource(SampleUsers())
		l.Info("user source: sample data")
	}

	if cfg.Source.CacheTTLSec > 0 {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		prev := cleanup
		cleanup = func() { _ = c.Close(); prev() }
		ttl := time.Duration(cfg.Source.CacheTTLSec) * time.Second
		src = NewCachedSource(src, c, cfg.Source.CacheKey, ttl)
		l.Info("user source: redis cache", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", ttl))
	}
	return src, cleanup, nil
}
