package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
	"github.com/identityworks/user-api/internal/core/service"
)

type UserHandler struct {
	users ports.UserService
	authz *service.Authorizer
	log   zerolog.Logger
}

func NewUserHandler(users ports.UserService, authz *service.Authorizer, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, authz: authz, log: log}
}

// List returns every account. Admin-only; gated by the RBAC middleware.
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	accounts, err := h.users.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	// Access to the full account list is sensitive; keep a trace of who
	// pulled it.
	h.log.Info().Str("username", claims.Username).Msg("admin listed all accounts")

	resp := make([]*accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, toAccountResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID returns one account. Accounts can read themselves; admins can read
// anyone.
//
// @Summary      Get an account by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.authz.Authorize(claims, domain.PolicyUserOrAdmin, id); err != nil {
		return err
	}

	account, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Me returns the calling account's own profile, resolved from the subject
// claim.
//
// @Summary      Get the current account's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	account, err := h.users.GetByID(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}
