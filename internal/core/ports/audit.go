package ports

import (
	"context"

	"github.com/identityworks/user-api/internal/core/domain"
)

// AuditTrail is the fire-and-forget side the core sees. Enqueue must not
// block the request path.
type AuditTrail interface {
	Enqueue(event domain.AuditEvent)
}

// AuditRecorder persists audit events; implemented by the Mongo audit
// repository and driven by the queue dispatcher workers.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
