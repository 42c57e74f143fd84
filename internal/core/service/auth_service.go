package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
)

// authService orchestrates the credential store and the password hasher to
// produce an authenticated identity. Rate limiting happens in front of it
// and is invisible here.
type authService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	audit  ports.AuditTrail
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, audit ports.AuditTrail, log zerolog.Logger) ports.AuthService {
	return &authService{repo: repo, hasher: hasher, audit: audit, log: log}
}

// Authenticate verifies username/password. Unknown username, wrong password,
// inactive account, and malformed stored hash all return the same
// ErrInvalidCredentials, and the missing-account paths still burn a
// full-cost hash comparison so the latency profile does not leak which
// usernames exist.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, s.reject(username, "empty credentials")
	}

	account, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		s.hasher.Verify(password, s.hasher.DummyHash())
		return nil, s.reject(username, "unknown username")
	case err != nil:
		s.log.Error().Err(err).Msg("credential store lookup failed")
		return nil, domain.ErrStoreUnavailable
	}

	if !account.Active || account.PasswordHash == "" {
		s.hasher.Verify(password, s.hasher.DummyHash())
		return nil, s.reject(username, "login disabled")
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, s.reject(username, "password mismatch")
	}

	s.log.Info().Str("username", username).Msg("authentication succeeded")
	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    domain.AuditActionLogin,
		Outcome:   domain.AuditOutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})
	return account.Redacted(), nil
}

// reject logs the concrete failure reason server-side and records the
// attempt on the audit trail. The caller only ever sees the generic error.
func (s *authService) reject(username, reason string) error {
	s.log.Warn().Str("username", username).Str("reason", reason).Msg("authentication failed")
	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    domain.AuditActionLogin,
		Outcome:   domain.AuditOutcomeFailure,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

// Register creates an account with a hashed password. Duplicate username or
// email is the one failure class reported specifically to the caller.
func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if in.Username == "" || in.Password == "" || in.Email == "" || !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRegistration
	}

	taken, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		s.log.Error().Err(err).Msg("username existence check failed")
		return nil, domain.ErrStoreUnavailable
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("email existence check failed")
		return nil, domain.ErrStoreUnavailable
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, account)
	if err != nil {
		// Unique indexes catch the race between the existence checks and
		// the insert; those duplicates keep their specific error.
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.log.Error().Err(err).Msg("account insert failed")
		return nil, domain.ErrStoreUnavailable
	}
	account.ID = id

	s.log.Info().Str("username", in.Username).Str("role", in.Role).Msg("account registered")
	s.audit.Enqueue(domain.AuditEvent{
		Username:  in.Username,
		Action:    domain.AuditActionRegister,
		Outcome:   domain.AuditOutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})
	return account.Redacted(), nil
}
