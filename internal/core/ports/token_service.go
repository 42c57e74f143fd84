package ports

import "github.com/identityworks/user-api/internal/core/domain"

// TokenService mints and verifies signed bearer tokens. Tokens are stateless
// and unrevocable; the short TTL is the only compromise mitigation.
type TokenService interface {
	Issue(account *domain.Account) (string, error)
	// Verify returns the decoded claims, or domain.ErrTokenInvalid for any
	// rejection regardless of the internal reason.
	Verify(token string) (*domain.Claims, error)
}
