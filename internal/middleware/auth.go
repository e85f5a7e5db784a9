package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// publicPathPrefixes bypass the session check entirely. Everything else
// requires a valid session cookie.
var publicPathPrefixes = []string{
	"/auth/login",
	"/auth/register",
	"/auth/me",
	"/auth/logout",
	"/health",
	"/swagger",
	"/login",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// wantsHTML reports whether the caller is a browser navigating to a page
// rather than an API client; those get redirected to the login page.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// CookieAuthMiddleware validates the session cookie on every non-public
// path and stores the authenticated user ID in the request context.
func CookieAuthMiddleware(cookieName, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())

		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c, "Authentication required")
			return
		}

		claims, err := utils.ParseAndValidateJWT(token, jwtSecret)
		if err != nil {
			msg := "Invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session has expired"
			}
			logger.Warn("Invalid session token", slog.String("error", err.Error()))
			abortUnauthenticated(c, msg)
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			abortUnauthenticated(c, "Invalid session claims")
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, msg string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
