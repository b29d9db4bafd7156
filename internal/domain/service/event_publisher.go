package service

import (
	"context"
)

// AuditEvent mirrors an audit log entry onto the message bus so
// downstream consumers (billing jobs, alerting) can react to state
// changes without polling the database.
type AuditEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Action     string         `json:"action"`
	ActorID    string         `json:"actor_id,omitempty"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
	OccurredAt string         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async processing
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
