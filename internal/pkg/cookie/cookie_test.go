//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gin-shareit/internal/pkg/config"
	"gin-shareit/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	return c, rec
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	res := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		res[ck.Name] = ck
	}
	return res
}

func TestSetTokenCookies(t *testing.T) {
	t.Run("scopes each token to its routes", func(t *testing.T) {
		c, rec := newContext()
		cookie.SetTokenCookies(c, config.CookieConfig{SameSite: "Strict", Domain: "shareit.local"},
			"access", "refresh", 15*time.Minute, 7*24*time.Hour)

		got := cookiesByName(rec)
		require.Len(t, got, 2)

		access := got[cookie.AccessTokenCookieName]
		require.NotNil(t, access)
		assert.Equal(t, "access", access.Value)
		assert.Equal(t, "/api", access.Path)
		assert.Equal(t, 900, access.MaxAge)
		assert.True(t, access.HttpOnly)
		assert.False(t, access.Secure)
		assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
		assert.Equal(t, "shareit.local", access.Domain)

		refresh := got[cookie.RefreshTokenCookieName]
		require.NotNil(t, refresh)
		assert.Equal(t, "refresh", refresh.Value)
		assert.Equal(t, "/api/auth", refresh.Path)
		assert.Equal(t, 7*24*3600, refresh.MaxAge)
		assert.True(t, refresh.HttpOnly)
	})

	t.Run("SameSite=None forces Secure", func(t *testing.T) {
		c, rec := newContext()
		cookie.SetTokenCookies(c, config.CookieConfig{SameSite: "none"}, "a", "r", time.Minute, time.Hour)

		for _, ck := range cookiesByName(rec) {
			assert.True(t, ck.Secure, ck.Name)
			assert.Equal(t, http.SameSiteNoneMode, ck.SameSite, ck.Name)
		}
	})
}

func TestClearTokenCookies(t *testing.T) {
	c, rec := newContext()
	cookie.ClearTokenCookies(c, config.CookieConfig{SameSite: "Lax"})

	got := cookiesByName(rec)
	require.Len(t, got, 2)
	assert.Equal(t, "/api", got[cookie.AccessTokenCookieName].Path)
	assert.Equal(t, "/api/auth", got[cookie.RefreshTokenCookieName].Path)
	for _, ck := range got {
		assert.Empty(t, ck.Value, ck.Name)
		assert.Negative(t, ck.MaxAge, ck.Name)
	}
}

func TestGetTokens(t *testing.T) {
	c, _ := newContext()
	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "a"})
	c.Request.AddCookie(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "r"})

	assert.Equal(t, "a", cookie.GetAccessToken(c))
	assert.Equal(t, "r", cookie.GetRefreshToken(c))

	empty, _ := newContext()
	assert.Empty(t, cookie.GetAccessToken(empty))
	assert.Empty(t, cookie.GetRefreshToken(empty))
}

func TestParseSameSite(t *testing.T) {
	testCases := []struct {
		in   string
		want http.SameSite
	}{
		{in: "Strict", want: http.SameSiteStrictMode},
		{in: " strict ", want: http.SameSiteStrictMode},
		{in: "None", want: http.SameSiteNoneMode},
		{in: "Lax", want: http.SameSiteLaxMode},
		{in: "", want: http.SameSiteLaxMode},
		{in: "bogus", want: http.SameSiteLaxMode},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, cookie.ParseSameSite(tc.in))
		})
	}
}
