package audit

import (
	"context"
	"time"

	"bookflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Logger persists audit entries to MongoDB.
type Logger struct {
	coll *mongo.Collection
}

func NewLogger(db *mongo.Database) *Logger {
	return &Logger{coll: db.Collection("audit_logs")}
}

func (l *Logger) Log(ev Event) error {
	entry := models.AuditEntry{
		ID:        uuid.New().String(),
		SessionID: ev.SessionID,
		CompanyID: ev.CompanyID,
		Action:    ev.Action,
		Metadata:  ev.Metadata,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.coll.InsertOne(ctx, entry)
	return err
}
