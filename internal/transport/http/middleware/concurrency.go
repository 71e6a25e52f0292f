package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "go-gin-user-table/internal/transport/http/response"
)

// ConcurrencyLimit caps requests in flight; waiting ends with the request context.
func ConcurrencyLimit(n int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max(n, 1))
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
