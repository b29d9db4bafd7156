package repository

import (
	"context"

	"vehiclee/internal/domain/entity"
)

// AuditLogRepository defines the append-only audit trail. Entries are
// never updated or deleted.
type AuditLogRepository interface {
	// Append persists one audit log entry.
	Append(ctx context.Context, entry *entity.AuditLogEntry) error
}
