package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/service"
)

// RBAC enforces the role portion of a policy on every request of a route.
// Ownership-scoped checks happen in the handlers, which know the resource.
// The central error handler turns the authorizer's verdict into 401 or 403.
func RBAC(authz *service.Authorizer, policy domain.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(ClaimsKey).(*domain.Claims)
			if err := authz.Authorize(claims, policy, ""); err != nil {
				return err
			}
			return next(c)
		}
	}
}
