package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns the read side of account management. Authorization
// is decided at the handler boundary, not here.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) GetAll(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("account listing failed")
		return nil, domain.ErrStoreUnavailable
	}
	redacted := make([]*domain.Account, 0, len(accounts))
	for _, a := range accounts {
		redacted = append(redacted, a.Redacted())
	}
	return redacted, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("account_id", id).Msg("account lookup failed")
		return nil, domain.ErrStoreUnavailable
	}
	return account.Redacted(), nil
}
