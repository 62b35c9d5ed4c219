package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware creates a Gin middleware handler that validates the
// opaque bearer session token against the auth service and stores the
// resolved user ID in the request context.
func SessionAuthMiddleware(authService portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		sessionID, ok := bearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			logger.Warn("Invalid session token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		attachIdentity(c, logger, user.UserID, sessionID)
		c.Next()
	}
}

// OptionalSessionAuthMiddleware resolves a session token when one is
// presented but lets anonymous requests through. Used by the conversion
// endpoint, which records history only for authenticated callers.
func OptionalSessionAuthMiddleware(authService portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			// An invalid token on an optional route degrades to anonymous.
			logger.Warn("Ignoring invalid session token on optional-auth route", slog.String("error", err.Error()))
			c.Next()
			return
		}

		attachIdentity(c, logger, user.UserID, sessionID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func attachIdentity(c *gin.Context, logger *slog.Logger, userID, sessionID string) {
	enrichedLogger := logger.With(slog.String("user_id", userID))

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
	c.Request = c.Request.WithContext(ctx)
}
