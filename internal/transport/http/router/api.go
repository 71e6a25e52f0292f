package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/core/server"
	"go-gin-user-table/internal/domain"
	"go-gin-user-table/internal/transport/http/handler"
	mdw "go-gin-user-table/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, cfg config.HTTP, pageSize int, src domain.UserSource) *gin.Engine {
	r := server.NewRouter(l, mdw.KeyRequestID)

	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		mdw.ConcurrencyLimit(cfg.MaxInFlight),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(timeout),
		mdw.Recovery(l),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	handler.NewUserTableHandler(src, pageSize, l).Mount(api)

	return r
}
