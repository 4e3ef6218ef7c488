package models

import "time"

// Audit actions recorded for connection mutations
const (
	AuditActionLinked   = "connection.linked"
	AuditActionUnlinked = "connection.unlinked"
)

// AuditLogEntry represents a single connection mutation event
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	UserID    string
	Action    string
	Provider  string
	Detail    string
}
