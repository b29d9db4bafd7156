package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEntityType names the kind of record a compliance queue entry
// refers to.
type ReviewEntityType string

const (
	ReviewEntityCreative ReviewEntityType = "creative"
	ReviewEntityCampaign ReviewEntityType = "campaign"
	ReviewEntityDriver   ReviewEntityType = "driver"
)

// ReviewStatus is the state of a compliance queue entry.
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewApproved  ReviewStatus = "approved"
	ReviewRejected  ReviewStatus = "rejected"
	ReviewEscalated ReviewStatus = "escalated"
)

// IsValid checks if the ReviewStatus is a valid value.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected, ReviewEscalated:
		return true
	default:
		return false
	}
}

// ComplianceQueueEntry is a generic review ticket. All human
// compliance review (creatives, campaigns, driver documents) flows
// through this single queue.
type ComplianceQueueEntry struct {
	ID                   uuid.UUID
	EntityType           ReviewEntityType
	EntityID             uuid.UUID
	Status               ReviewStatus
	ReviewedBy           *uuid.UUID
	ReviewedAt           *time.Time
	RejectionReason      *string
	RestrictedCategories []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
