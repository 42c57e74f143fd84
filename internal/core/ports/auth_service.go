package ports

import (
	"context"

	"github.com/identityworks/user-api/internal/core/domain"
)

// RegisterInput carries a registration request into the core. The plaintext
// password must not be logged or persisted.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	// Authenticate verifies credentials and returns the account with its
	// password hash redacted. Every failure mode collapses to
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
}
