package usecase

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewCreativeInput carries an admin's decision on a queued creative.
type ReviewCreativeInput struct {
	EntryID         uuid.UUID `json:"entry_id" validate:"required"`
	Approved        bool      `json:"approved"`
	RejectionReason *string   `json:"rejection_reason"`
}

// ComplianceStats summarizes the review queue by status.
type ComplianceStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// ComplianceUsecase defines the admin's compliance review use cases.
type ComplianceUsecase interface {
	// GetQueue returns review entries, oldest first, optionally
	// filtered by status.
	GetQueue(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ComplianceQueueEntry, error)

	// GetStats returns the queue counts per review status.
	GetStats(ctx context.Context) (*ComplianceStats, error)

	// ReviewCreative decides a pending creative review entry. A
	// rejection requires a reason; an approval never stores one.
	ReviewCreative(ctx context.Context, adminID uuid.UUID, input *ReviewCreativeInput) error

	// ApproveCampaign moves a campaign from awaiting_approval to approved.
	ApproveCampaign(ctx context.Context, adminID, campaignID uuid.UUID) error

	// RejectCampaign moves a campaign from awaiting_approval to
	// cancelled, recording the reason in the audit trail.
	RejectCampaign(ctx context.Context, adminID, campaignID uuid.UUID, reason string) error

	// GetTickets returns every support ticket, newest first.
	GetTickets(ctx context.Context) ([]*entity.SupportTicket, error)
}
