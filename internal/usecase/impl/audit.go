// Package impl contains the concrete implementations of the usecase
// interfaces. Multi-row mutations run inside transactionManager.Execute
// so the audit trail commits atomically with the change it records.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vehiclee/internal/delivery/context"
	"vehiclee/internal/domain/entity"
	"vehiclee/internal/domain/service"

	"github.com/google/uuid"
)

// newAuditEntry builds an audit log entry for one state-changing action.
func newAuditEntry(actorID uuid.UUID, action, entityType string, entityID uuid.UUID, changes map[string]any, reason *string) *entity.AuditLogEntry {
	actor := actorID
	target := entityID

	return &entity.AuditLogEntry{
		ActorID:    &actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   &target,
		Changes:    changes,
		Reason:     reason,
	}
}

// publishAudit mirrors a committed audit entry onto the event bus.
// Publishing is best-effort: a bus failure must never fail the request
// whose database change already committed.
func publishAudit(ctx context.Context, publisher service.EventPublisher, fallback *slog.Logger, entry *entity.AuditLogEntry) {
	if publisher == nil || entry == nil {
		return
	}

	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		Changes:    entry.Changes,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if entry.ActorID != nil {
		event.ActorID = entry.ActorID.String()
	}
	if entry.EntityID != nil {
		event.EntityID = entry.EntityID.String()
	}

	if err := publisher.PublishAuditEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, fallback)
		if logger != nil {
			logger.Warn("failed to publish audit event",
				slog.String("action", entry.Action),
				slog.Any("error", err),
			)
		}
	}
}
