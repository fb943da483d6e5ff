package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gin-shareit/internal/handler/httperr"
	"gin-shareit/internal/pkg/config"
	"gin-shareit/internal/pkg/cookie"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SharerUserIDHeader = "X-Sharer-User-Id"

	ctxUserIDKey = "user_id"
)

var errUnauthenticated = errs.Mark(errs.New("access token required"), errs.ErrUnauthorized)

type AuthMiddleware struct {
	tokenValidator    usecase.TokenValidator
	trustSharerHeader bool
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator:    tokenValidator,
		trustSharerHeader: cfg.TrustSharerHeader,
	}
}

// RequireAuth resolves the acting user from the access token cookie, then a
// Bearer header, then X-Sharer-User-Id when the gateway is trusted.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerOrCookie(c); token != "" {
			userID, err := m.tokenValidator.ValidateToken(token)
			if err != nil {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
				return
			}
			setUser(c, userID)
			c.Next()
			return
		}

		if m.trustSharerHeader {
			if raw := c.GetHeader(SharerUserIDHeader); raw != "" {
				userID, err := uuid.Parse(strings.TrimSpace(raw))
				if err != nil {
					httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+SharerUserIDHeader+" header", nil)
					return
				}
				setUser(c, userID)
				c.Next()
				return
			}
		}

		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setUser(c *gin.Context, userID uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
	c.Set("jwt_claims", map[string]any{
		"user_id": userID.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
