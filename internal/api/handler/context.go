package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/identityworks/user-api/internal/api/middleware"
	"github.com/identityworks/user-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// presence proves the middleware ran; a protected handler reached without
// them is a not-authenticated condition, never a 403.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil || claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}
