package models

import "time"

// AuditEntry is one booking-flow milestone persisted to MongoDB.
type AuditEntry struct {
	ID        string         `bson:"id" json:"id"`
	SessionID string         `bson:"sessionId" json:"sessionId"`
	CompanyID string         `bson:"companyId,omitempty" json:"companyId,omitempty"`
	Action    string         `bson:"action" json:"action"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
