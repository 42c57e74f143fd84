package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/identityworks/user-api/internal/core/domain"
)

const auditCollection = "audit_log"

// MongoAuditRepository appends authentication audit events; implements
// ports.AuditRecorder for the queue dispatcher workers.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Username  string `bson:"username"`
	Action    string `bson:"action"`
	Outcome   string `bson:"outcome"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Username:  event.Username,
		Action:    event.Action,
		Outcome:   event.Outcome,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}
