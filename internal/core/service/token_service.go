package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
	"github.com/identityworks/user-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// accountClaims is the wire shape of the claim set: registered claims plus
// the identity fields the authorization layer needs.
type accountClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	log      zerolog.Logger
}

// NewTokenService builds a TokenService signing with HMAC-SHA-256. The
// secret comes from configuration and is held only here; it is never logged.
// A non-positive ttl falls back to one hour.
func NewTokenService(secret, issuer, audience string, ttl time.Duration, log zerolog.Logger) ports.TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &tokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		log:      log,
	}
}

// Issue mints a token for the account: sub, username, email, role, a fresh
// jti, iat, and exp = iat + ttl. Tokens are never renewed; the client
// re-authenticates after expiry.
func (s *tokenService) Issue(account *domain.Account) (string, error) {
	now := time.Now().UTC()
	claims := accountClaims{
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("username", account.Username).Str("jti", claims.ID).Msg("token issued")
	return signed, nil
}

// Verify checks the signature (HS256 only), issuer, audience, and expiry
// with zero leeway. Every rejection collapses to domain.ErrTokenInvalid so
// the caller cannot tell the reasons apart; the reason is logged at debug
// level.
func (s *tokenService) Verify(token string) (*domain.Claims, error) {
	claims := &accountClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrTokenInvalid
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &domain.Claims{
		Subject:   claims.Subject,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}
