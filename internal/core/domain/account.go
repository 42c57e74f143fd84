package domain

import "time"

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// Account models a registered user of the system.
//
// PasswordHash is either empty (login disabled, or redacted before the
// account crosses a service boundary) or an opaque bcrypt hash. It is never
// serialized into any response.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Redacted returns a copy of the account with the password hash cleared.
func (a Account) Redacted() *Account {
	a.PasswordHash = ""
	return &a
}
