package ports

import (
	"context"

	"github.com/identityworks/user-api/internal/core/domain"
)

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}
