package service

import (
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
)

// Authorizer decides allow/deny for a claim set against a named policy,
// optionally scoped to a resource owner.
type Authorizer struct {
	log zerolog.Logger
}

func NewAuthorizer(log zerolog.Logger) *Authorizer {
	return &Authorizer{log: log}
}

// Authorize gates an operation:
//
//   - nil or subject-less claims → ErrUnauthenticated (the 401 case).
//   - ownerID empty: the role must satisfy the policy.
//   - ownerID set: admins pass on role, everyone else must own the resource.
//
// Any denial of an authenticated caller is ErrForbidden (the 403 case),
// never conflated with ErrUnauthenticated.
func (a *Authorizer) Authorize(claims *domain.Claims, policy domain.Policy, ownerID string) error {
	if claims == nil || claims.Subject == "" {
		return domain.ErrUnauthenticated
	}

	allowed := false
	switch {
	case ownerID == "":
		allowed = policy.AllowsRole(claims.Role)
	case claims.Role == domain.RoleAdmin:
		allowed = true
	default:
		allowed = claims.Subject == ownerID
	}

	if !allowed {
		a.log.Warn().
			Str("subject", claims.Subject).
			Str("role", claims.Role).
			Str("policy", string(policy)).
			Str("owner_id", ownerID).
			Msg("authorization denied")
		return domain.ErrForbidden
	}
	return nil
}
