package domain

import "errors"

// Sentinel errors. Handlers never build status codes themselves; the central
// HTTP error handler maps these to responses.
var (
	// ErrInvalidCredentials covers every login failure: unknown username,
	// wrong password, inactive account, malformed stored hash. Collapsing
	// them prevents username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid covers every token verification failure: bad
	// signature, expiry, wrong issuer or audience, malformed input. The
	// concrete reason is logged, never surfaced.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrUnauthenticated means no usable claims were presented at all.
	// Distinct from ErrForbidden: 401 vs 403.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the caller is authenticated but neither its role
	// nor resource ownership permits the operation.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidRegistration covers registration payloads that survive
	// transport validation but fail the core's own guards (unknown role,
	// missing fields).
	ErrInvalidRegistration = errors.New("invalid registration input")

	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")

	// ErrStoreUnavailable wraps credential store failures; store internals
	// never reach the client.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
