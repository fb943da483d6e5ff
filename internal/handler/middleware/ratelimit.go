package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"gin-shareit/internal/handler/httperr"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles an authenticated route per acting user. It must run
// after RequireAuth. Limiter failures let the request through.
func RateLimit(limiter Limiter, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), name+":"+userID.String())
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable", "error", err, "route", name)
			c.Next()
			return
		}
		if !allowed {
			metrics.IncRateLimited(name)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
