// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"sweetshop/internal/dto"
	"sweetshop/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, secret string) (*service.Claims, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, "missing token"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, "invalid authorization header format"
	}
	claims, err := service.VerifyAccessToken(parts[1], secret)
	if err != nil {
		return nil, "invalid or expired token"
	}
	return claims, ""
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims under ContextUserKey.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, msg := extractClaims(c, secret)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, dto.Error(msg))
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	auth := RequireAuth(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if !claims.IsAdmin() {
				return c.JSON(http.StatusForbidden, dto.Error("admin privileges required"))
			}
			return next(c)
		})
	}
}

// ClaimsFromContext returns the claims stored by RequireAuth, or nil.
func ClaimsFromContext(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
