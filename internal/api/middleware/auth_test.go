package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
	"github.com/identityworks/user-api/internal/core/service"
)

func newTestTokens() ports.TokenService {
	return service.NewTokenService("secret", "user-api", "user-api-clients", time.Hour, zerolog.Nop())
}

func issueToken(t *testing.T, tokens ports.TokenService) string {
	t.Helper()
	token, err := tokens.Issue(&domain.Account{
		ID:       "64f0c1e2a5b4c3d2e1f00001",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func httpStatusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		claims, ok := c.Get(ClaimsKey).(*domain.Claims)
		if !ok || claims == nil {
			t.Fatalf("claims not set")
		}
		if claims.Username != "alice" || claims.Role != domain.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(newTestTokens())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(newTestTokens())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(newTestTokens())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_ExpiredTokenRejected(t *testing.T) {
	e := echo.New()
	shortLived := service.NewTokenService("secret", "user-api", "user-api-clients", time.Nanosecond, zerolog.Nop())
	token := issueToken(t, shortLived)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := Auth(shortLived)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatusOf(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
