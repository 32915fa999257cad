package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/jwtutil"
	"github.com/OWNALGARNI/holbertonschool-hbnb/pkg/logger"
	"github.com/OWNALGARNI/holbertonschool-hbnb/prometheus"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey  = "user_id"
	EmailKey   = "email"
	IsAdminKey = "is_admin"
)

// AuthMiddleware validates the JWT token from the Authorization header and
// stores the caller's identity in the echo context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Error("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Error("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store caller identity in context for the handlers
		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Set(IsAdminKey, claims.IsAdmin)

		return next(c)
	}
}

// RequireAdmin rejects callers whose token does not carry the admin flag.
// It must run after AuthMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if admin, ok := c.Get(IsAdminKey).(bool); !ok || !admin {
			logger.FromContext(c).Warn("Admin-only endpoint called by non-admin")
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin privileges required"})
		}
		return next(c)
	}
}

// CallerID returns the authenticated user's ID from the context, or "" when
// the request did not pass AuthMiddleware.
func CallerID(c echo.Context) string {
	id, _ := c.Get(UserIDKey).(string)
	return id
}

// IsAdmin reports whether the authenticated caller is an administrator.
func IsAdmin(c echo.Context) bool {
	admin, _ := c.Get(IsAdminKey).(bool)
	return admin
}
