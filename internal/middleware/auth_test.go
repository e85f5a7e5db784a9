package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arsipku/arsip_backend/internal/middleware"
	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCookieName = "auth-token"
	testJWTSecret  = "test-secret-key-that-is-long-enough"
)

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CookieAuthMiddleware(testCookieName, testJWTSecret))

	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/auth/logout", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login page") })
	r.GET("/archives", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestCookieAuthMiddleware_PublicPathsBypassSession(t *testing.T) {
	r := newGuardedRouter(t)

	// logout must work with a stale cookie and /login must never redirect
	// to itself
	for _, path := range []string{"/health", "/auth/login", "/auth/logout", "/login"} {
		method := http.MethodGet
		if path == "/auth/login" || path == "/auth/logout" {
			method = http.MethodPost
		}
		req := httptest.NewRequest(method, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCookieAuthMiddleware_MissingCookieIsUnauthorizedJSON(t *testing.T) {
	r := newGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/archives", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestCookieAuthMiddleware_BrowserIsRedirectedToLogin(t *testing.T) {
	r := newGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/archives", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestCookieAuthMiddleware_ValidSessionPassesUserID(t *testing.T) {
	r := newGuardedRouter(t)

	token, err := utils.GenerateJWT("user-42", testJWTSecret, time.Hour, "arsip-backend")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/archives", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestCookieAuthMiddleware_ExpiredSessionIsRejected(t *testing.T) {
	r := newGuardedRouter(t)

	token, err := utils.GenerateJWT("user-42", testJWTSecret, -time.Minute, "arsip-backend")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/archives", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}
