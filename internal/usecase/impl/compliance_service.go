package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/domain/service"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
)

type complianceService struct {
	complianceRepo repository.ComplianceRepository
	campaignRepo   repository.CampaignRepository
	ticketRepo     repository.TicketRepository
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewComplianceService creates a new compliance service instance
func NewComplianceService(
	complianceRepo repository.ComplianceRepository,
	campaignRepo repository.CampaignRepository,
	ticketRepo repository.TicketRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ComplianceUsecase {
	return &complianceService{
		complianceRepo: complianceRepo,
		campaignRepo:   campaignRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetQueue returns review entries, oldest first, optionally filtered by
// status.
func (s *complianceService) GetQueue(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ComplianceQueueEntry, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown review status")
	}

	entries, err := s.complianceRepo.ListEntries(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliance queue entries: %w", err)
	}

	return entries, nil
}

// GetStats returns the queue counts per review status.
func (s *complianceService) GetStats(ctx context.Context) (*usecase.ComplianceStats, error) {
	counts, err := s.complianceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queue entries by status: %w", err)
	}

	return &usecase.ComplianceStats{
		Pending:  counts[entity.ReviewPending],
		Approved: counts[entity.ReviewApproved],
		Rejected: counts[entity.ReviewRejected],
	}, nil
}

// ReviewCreative decides a pending creative review entry. The decision
// is written to the creative and the queue entry in one transaction. A
// rejection requires a reason; an approval never stores one.
func (s *complianceService) ReviewCreative(ctx context.Context, adminID uuid.UUID, input *usecase.ReviewCreativeInput) error {
	entry, err := s.complianceRepo.FindEntryByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewEntryNotFound) {
			return domainerrors.ErrReviewEntryNotFound
		}

		return fmt.Errorf("failed to find review entry by ID: %w", err)
	}

	if entry.Status != entity.ReviewPending {
		return domainerrors.ErrReviewAlreadyDecided
	}

	var reason *string
	if !input.Approved {
		if input.RejectionReason == nil || *input.RejectionReason == "" {
			return domainerrors.ErrRejectionReasonRequired
		}
		reason = input.RejectionReason
	}

	decision := entity.ReviewApproved
	action := entity.AuditCreativeApprovedByAdmin
	if !input.Approved {
		decision = entity.ReviewRejected
		action = entity.AuditCreativeRejectedByAdmin
	}

	review := entity.CreativeReview{
		Approved:        input.Approved,
		ReviewedBy:      adminID,
		ReviewedAt:      time.Now(),
		RejectionReason: reason,
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCreativeRepository().ApplyComplianceReview(ctx, entry.EntityID, review); err != nil {
			return fmt.Errorf("failed to apply compliance review: %w", err)
		}

		if err := factory.NewComplianceRepository().UpdateEntryStatus(ctx, entry.ID, decision, adminID, reason); err != nil {
			return fmt.Errorf("failed to update review entry status: %w", err)
		}

		auditEntry = newAuditEntry(adminID, action, "creative", entry.EntityID, map[string]any{
			"entry_id": entry.ID.String(),
		}, reason)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return nil
}

// ApproveCampaign moves a campaign from awaiting_approval to approved,
// recording the reviewer on the campaign row.
func (s *complianceService) ApproveCampaign(ctx context.Context, adminID, campaignID uuid.UUID) error {
	return s.decideCampaign(ctx, adminID, campaignID, true, nil)
}

// RejectCampaign moves a campaign from awaiting_approval to cancelled.
// The reason lives only in the audit trail.
func (s *complianceService) RejectCampaign(ctx context.Context, adminID, campaignID uuid.UUID, reason string) error {
	if reason == "" {
		return domainerrors.ErrRejectionReasonRequired
	}

	return s.decideCampaign(ctx, adminID, campaignID, false, &reason)
}

func (s *complianceService) decideCampaign(ctx context.Context, adminID, campaignID uuid.UUID, approved bool, reason *string) error {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domainerrors.ErrCampaignNotFound
		}

		return fmt.Errorf("failed to find campaign by ID: %w", err)
	}

	if campaign.Status != entity.CampaignAwaitingApproval {
		return domainerrors.ErrCampaignNotReviewable
	}

	next := entity.CampaignApproved
	action := entity.AuditCampaignApprovedByAdmin
	reviewedBy := &adminID
	if !approved {
		next = entity.CampaignCancelled
		action = entity.AuditCampaignRejectedByAdmin
		reviewedBy = nil
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCampaignRepository().UpdateCampaignStatus(ctx, campaign.ID, next, reviewedBy); err != nil {
			return fmt.Errorf("failed to update campaign status: %w", err)
		}

		auditEntry = newAuditEntry(adminID, action, "campaign", campaign.ID, map[string]any{
			"from": string(campaign.Status),
			"to":   string(next),
		}, reason)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return nil
}

// GetTickets returns every support ticket, newest first.
func (s *complianceService) GetTickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListAllTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return tickets, nil
}
