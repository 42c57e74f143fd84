package ports

import (
	"context"

	"github.com/identityworks/user-api/internal/core/domain"
)

// UserRepository is the narrow credential-store capability the core needs.
// Username matching is case-sensitive exact. Implementations must bind every
// lookup value as a query parameter, never by string concatenation.
type UserRepository interface {
	// FindByUsername returns the account regardless of its active flag;
	// the caller decides whether an inactive account may log in.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Insert persists the account (PasswordHash already hashed) and returns
	// the assigned ID.
	Insert(ctx context.Context, account *domain.Account) (string, error)
	List(ctx context.Context) ([]*domain.Account, error)
}
