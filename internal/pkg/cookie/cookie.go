// Package cookie keeps the JWT pair in HttpOnly cookies. The access cookie
// travels with every API call, the refresh cookie only with /api/auth.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"gin-shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "shareit_access_token"
	RefreshTokenCookieName = "shareit_refresh_token"

	AccessTokenPath  = "/api"
	RefreshTokenPath = "/api/auth"
)

type tokenCookie struct {
	name string
	path string
}

var (
	accessCookie  = tokenCookie{name: AccessTokenCookieName, path: AccessTokenPath}
	refreshCookie = tokenCookie{name: RefreshTokenCookieName, path: RefreshTokenPath}
)

func (t tokenCookie) write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	sameSite := ParseSameSite(cfg.SameSite)
	c.SetSameSite(sameSite)
	// browsers drop SameSite=None cookies without Secure
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode
	c.SetCookie(t.name, value, maxAge, t.path, cfg.Domain, secure, true)
}

func (t tokenCookie) read(c *gin.Context) string {
	value, _ := c.Cookie(t.name)
	return value
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	accessCookie.write(c, cfg, accessToken, int(accessExpiry.Seconds()))
	refreshCookie.write(c, cfg, refreshToken, int(refreshExpiry.Seconds()))
}

// ClearTokenCookies expires both cookies on the paths they were set with.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	accessCookie.write(c, cfg, "", -1)
	refreshCookie.write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	return accessCookie.read(c)
}

func GetRefreshToken(c *gin.Context) string {
	return refreshCookie.read(c)
}

// ParseSameSite reads COOKIE_SAME_SITE case-insensitively; unknown values mean Lax.
func ParseSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(sameSite)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
