package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is the echo context key holding the authenticated user id.
const ContextUserKey = "authUserId"

// Middleware validates the bearer token and stores the subject on the request context.
func Middleware(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			claims, err := validator.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			c.Set(ContextUserKey, claims.RegisteredClaims.Subject)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id stored by Middleware.
func UserID(c echo.Context) string {
	if id, ok := c.Get(ContextUserKey).(string); ok {
		return id
	}
	return ""
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
