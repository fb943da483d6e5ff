//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"gin-shareit/internal/handler/middleware"
	"gin-shareit/internal/pkg/config"
	"gin-shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.POST("/api/requests", func(c *gin.Context) {
		c.Header("Location", "/api/requests/1")
		c.Status(http.StatusCreated)
	})
	return r
}

func corsConfig(origins ...string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("listed origin gets credentials and Location", func(t *testing.T) {
		r := newCORSRouter(corsConfig("http://localhost:3000"))
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/api/requests",
			map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Location")
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Content-Length")
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		r := newCORSRouter(corsConfig("http://localhost:3000"))
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/api/requests",
			map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		r := newCORSRouter(corsConfig("*"))
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/api/requests",
			map[string]string{"Origin": "https://anywhere.example"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight is answered", func(t *testing.T) {
		r := newCORSRouter(corsConfig("http://localhost:3000"))
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodOptions, "/api/requests", map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": "POST",
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}
