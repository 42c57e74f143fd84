package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/api/metrics"
	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
)

// bruteForceWarnThreshold is the failed-attempt count per username window
// past which a warning is logged for monitoring.
const bruteForceWarnThreshold = 10

// FailedLoginTracker counts failed logins per username inside a rolling
// window (Redis-backed). Nil-able: the core behaves identically without it.
type FailedLoginTracker interface {
	RecordFailure(ctx context.Context, username string) (int64, error)
	Reset(ctx context.Context, username string) error
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
	attempts    FailedLoginTracker
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, attempts FailedLoginTracker, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, attempts: attempts, log: log}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{Account: toAccountResponse(account)})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	account, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			metrics.LoginAttemptsTotal.WithLabelValues("store_unavailable").Inc()
			return err
		}
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		h.trackFailure(ctx, req.Username)
		return err
	}

	token, err := h.tokens.Issue(account)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.trackSuccess(ctx, req.Username)
	return c.JSON(http.StatusOK, authResponse{Token: token, Account: toAccountResponse(account)})
}

// trackFailure bumps the per-username failure counter. Best-effort: a
// tracker outage never changes the response.
func (h *AuthHandler) trackFailure(ctx context.Context, username string) {
	if h.attempts == nil {
		return
	}
	count, err := h.attempts.RecordFailure(ctx, username)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed-login tracker unavailable")
		return
	}
	if count >= bruteForceWarnThreshold {
		h.log.Warn().Str("username", username).Int64("failures", count).Msg("possible brute-force attempt")
	}
}

func (h *AuthHandler) trackSuccess(ctx context.Context, username string) {
	if h.attempts == nil {
		return
	}
	if err := h.attempts.Reset(ctx, username); err != nil {
		h.log.Warn().Err(err).Msg("failed-login tracker unavailable")
	}
}

func registerOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidRegistration):
		return "invalid"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "error"
	}
}
