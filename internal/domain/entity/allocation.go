package entity

import (
	"time"

	"github.com/google/uuid"
)

// AllocationStatus is the lifecycle state of a campaign-to-device
// assignment.
type AllocationStatus string

const (
	AllocationScheduled AllocationStatus = "scheduled"
	AllocationActive    AllocationStatus = "active"
	AllocationCompleted AllocationStatus = "completed"
	AllocationCancelled AllocationStatus = "cancelled"
)

// IsValid checks if the AllocationStatus is a valid value.
func (s AllocationStatus) IsValid() bool {
	switch s {
	case AllocationScheduled, AllocationActive, AllocationCompleted, AllocationCancelled:
		return true
	default:
		return false
	}
}

// CampaignAllocation assigns one campaign to one device for a bounded
// date range. Invariant: at most one allocation per device is active
// at any time.
type CampaignAllocation struct {
	ID                  uuid.UUID
	CampaignID          uuid.UUID
	DeviceID            uuid.UUID
	AllocationStartDate time.Time
	AllocationEndDate   time.Time
	Status              AllocationStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
