package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/identityworks/user-api/internal/core/domain"
)

const (
	testSecret   = "test-signing-key"
	testIssuer   = "user-api"
	testAudience = "user-api-clients"
)

func newTestTokenService() *tokenService {
	return NewTokenService(testSecret, testIssuer, testAudience, time.Hour, zerolog.Nop()).(*tokenService)
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:       "64f0c1e2a5b4c3d2e1f00001",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
		Active:   true,
	}
}

// signToken builds a token outside the service, for rejection cases.
func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenService_IssueVerifyRoundtrip(t *testing.T) {
	svc := newTestTokenService()
	account := testAccount()

	token, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != account.ID {
		t.Fatalf("subject = %q, want %q", claims.Subject, account.ID)
	}
	if claims.Username != account.Username {
		t.Fatalf("username = %q, want %q", claims.Username, account.Username)
	}
	if claims.Email != account.Email {
		t.Fatalf("email = %q, want %q", claims.Email, account.Email)
	}
	if claims.Role != account.Role {
		t.Fatalf("role = %q, want %q", claims.Role, account.Role)
	}
	if claims.TokenID == "" {
		t.Fatalf("jti is empty")
	}
	if claims.ExpiresAt.Before(time.Now().Add(50 * time.Minute)) {
		t.Fatalf("expiry %v closer than the configured TTL", claims.ExpiresAt)
	}
}

func TestTokenService_UniqueTokenID(t *testing.T) {
	svc := newTestTokenService()
	account := testAccount()

	first, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	second, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c1, err := svc.Verify(first)
	if err != nil {
		t.Fatalf("Verify first: %v", err)
	}
	c2, err := svc.Verify(second)
	if err != nil {
		t.Fatalf("Verify second: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("two tokens share jti %q", c1.TokenID)
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := newTestTokenService()

	expired := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "64f0c1e2a5b4c3d2e1f00001",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
	})

	if _, err := svc.Verify(expired); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestTokenService_RejectsTamperedSignature(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.Issue(testAccount())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip one byte of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := svc.Verify(string(tampered)); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestTokenService_RejectsWrongIssuerOrAudience(t *testing.T) {
	svc := newTestTokenService()
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	wrongIssuer := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject: "1", Issuer: "other-service", Audience: jwt.ClaimStrings{testAudience}, ExpiresAt: exp,
	})
	wrongAudience := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject: "1", Issuer: testIssuer, Audience: jwt.ClaimStrings{"other-clients"}, ExpiresAt: exp,
	})

	for _, token := range []string{wrongIssuer, wrongAudience} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for cross-service token, got %v", err)
		}
	}
}

func TestTokenService_RejectsWrongKeyAndGarbage(t *testing.T) {
	svc := newTestTokenService()
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	forged := signToken(t, "attacker-key", jwt.RegisteredClaims{
		Subject: "1", Issuer: testIssuer, Audience: jwt.ClaimStrings{testAudience}, ExpiresAt: exp,
	})

	for _, token := range []string{forged, "not.a.token", ""} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	}
}

func TestTokenService_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestTokenService()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(unsigned); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none token, got %v", err)
	}
}
