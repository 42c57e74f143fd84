package domain

import "time"

// Audit actions and outcomes.
const (
	AuditActionLogin    = "login"
	AuditActionRegister = "register"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuditEvent records one authentication-related attempt for brute-force
// monitoring. It carries the submitted username, never the password.
type AuditEvent struct {
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
