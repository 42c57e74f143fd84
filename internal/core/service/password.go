package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// minHashCost is the floor for the bcrypt work factor. Lower values are
// silently raised; the hash must stay expensive.
const minHashCost = 12

// PasswordHasher wraps bcrypt with an enforced work factor. Hashing is
// intentionally slow and must not be cached or parallelized away.
type PasswordHasher struct {
	cost  int
	dummy string
	log   zerolog.Logger
}

// NewPasswordHasher creates a hasher with the given cost, clamped to
// [minHashCost, bcrypt.MaxCost]. The constructor precomputes a throwaway
// hash so callers can burn a full-cost comparison when no account matches a
// lookup, keeping the latency profile of absent and present usernames close.
func NewPasswordHasher(cost int, log zerolog.Logger) *PasswordHasher {
	if cost < minHashCost {
		cost = minHashCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		// Only reachable with an out-of-range cost, which the clamp above
		// prevents.
		panic(fmt.Sprintf("password hasher: precompute dummy hash: %v", err))
	}
	return &PasswordHasher{cost: cost, dummy: string(dummy), log: log}
}

// Hash derives a salted hash of plaintext. Two calls with the same input
// produce different hashes (fresh random salt per call).
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash using bcrypt's own
// constant-time comparison. A malformed hash yields false, never an error:
// the parse failure is logged and swallowed so callers cannot distinguish it
// from a plain mismatch.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false
	default:
		h.log.Warn().Err(err).Msg("stored password hash is malformed")
		return false
	}
}

// DummyHash returns the precomputed throwaway hash. Verifying any password
// against it always fails, at the same cost as a real comparison.
func (h *PasswordHasher) DummyHash() string {
	return h.dummy
}
