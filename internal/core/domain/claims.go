package domain

import "time"

// Claims is the verified, decoded content of a bearer token.
type Claims struct {
	Subject   string    `json:"sub"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"exp"`
}
