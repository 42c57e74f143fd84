package handler

import (
	"time"

	"github.com/identityworks/user-api/internal/core/domain"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=User Admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the external shape of an account. There is no field for
// the password hash on purpose.
type accountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token   string           `json:"token,omitempty"`
	Account *accountResponse `json:"account,omitempty"`
}

func toAccountResponse(a *domain.Account) *accountResponse {
	if a == nil {
		return nil
	}
	return &accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}
