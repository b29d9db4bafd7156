package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewEntryNotFound is returned when a compliance queue entry does not exist.
var ErrReviewEntryNotFound = errors.New("review entry not found")

// ComplianceRepository defines persistence operations for the shared
// compliance review queue.
type ComplianceRepository interface {
	// CreateEntry appends a new pending entry to the queue.
	CreateEntry(ctx context.Context, entry *entity.ComplianceQueueEntry) error

	// FindEntryByID retrieves a single queue entry by ID.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceQueueEntry, error)

	// ListEntries retrieves queue entries, oldest first. A nil status
	// returns all entries regardless of state.
	ListEntries(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ComplianceQueueEntry, error)

	// CountByStatus returns the number of queue entries per review status.
	// Statuses with no entries are absent from the map.
	CountByStatus(ctx context.Context) (map[entity.ReviewStatus]int64, error)

	// UpdateEntryStatus records the reviewer's decision on an entry.
	UpdateEntryStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus, reviewedBy uuid.UUID, reason *string) error
}
