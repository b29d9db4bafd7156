package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the campaign workflow state.
type CampaignStatus string

const (
	CampaignDraft            CampaignStatus = "draft"
	CampaignAwaitingCreative CampaignStatus = "awaiting_creative"
	CampaignAwaitingApproval CampaignStatus = "awaiting_approval"
	CampaignApproved         CampaignStatus = "approved"
	CampaignActive           CampaignStatus = "active"
	CampaignCompleted        CampaignStatus = "completed"
	CampaignCancelled        CampaignStatus = "cancelled"
)

// IsValid checks if the CampaignStatus is a valid value.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignDraft, CampaignAwaitingCreative, CampaignAwaitingApproval,
		CampaignApproved, CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the workflow allows moving from s to
// next. The table is the single source of truth for campaign
// transitions; services must consult it before any status update.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignDraft:
		return next == CampaignAwaitingCreative
	case CampaignAwaitingCreative:
		return next == CampaignAwaitingApproval
	case CampaignAwaitingApproval:
		return next == CampaignApproved || next == CampaignCancelled
	case CampaignApproved:
		return next == CampaignActive || next == CampaignCancelled
	case CampaignActive:
		return next == CampaignCompleted || next == CampaignCancelled
	case CampaignCompleted, CampaignCancelled:
		return false
	default:
		return false
	}
}

// Campaign is an advertiser's booking: a schedule, a car count and a
// budget, owned by one ClientProfile. Budgets are integer minor units;
// StartDate and EndDate are date-only values.
type Campaign struct {
	ID                   uuid.UUID
	ClientID             uuid.UUID
	CampaignName         string
	Description          string
	City                 string
	ZoneID               *uuid.UUID
	StartDate            time.Time
	EndDate              time.Time
	NumberOfCars         int
	DailyBudget          int64
	TotalBudget          int64
	Status               CampaignStatus
	ComplianceApprovedAt *time.Time
	ComplianceApprovedBy *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
