package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/identityworks/user-api/internal/api/metrics"
	"github.com/identityworks/user-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores the verified
// claims.
const ClaimsKey = "claims"

// Auth validates the bearer token and injects the verified claims into the
// request context. Every verification failure is a plain 401 with a uniform
// message; the concrete reason stays in the server logs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
