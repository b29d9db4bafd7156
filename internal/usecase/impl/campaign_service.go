package impl

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/domain/service"
	"vehiclee/internal/usecase"
	"vehiclee/internal/util"

	"github.com/google/uuid"
)

type campaignService struct {
	profileRepo  repository.ProfileRepository
	campaignRepo repository.CampaignRepository
	creativeRepo repository.CreativeRepository
	txManager    repository.TransactionManager
	storage      service.ObjectStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(
	profileRepo repository.ProfileRepository,
	campaignRepo repository.CampaignRepository,
	creativeRepo repository.CreativeRepository,
	txManager repository.TransactionManager,
	storage service.ObjectStorage,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		profileRepo:  profileRepo,
		campaignRepo: campaignRepo,
		creativeRepo: creativeRepo,
		txManager:    txManager,
		storage:      storage,
		publisher:    publisher,
		logger:       logger,
	}
}

// findOwnedCampaign loads a campaign and verifies it belongs to the
// caller's client profile. A caller without a profile owns nothing, so
// the campaign is reported as not found rather than forbidden.
func (s *campaignService) findOwnedCampaign(ctx context.Context, userID, campaignID uuid.UUID) (*entity.Campaign, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, fmt.Errorf("failed to find campaign by ID: %w", err)
	}

	if campaign.ClientID != profile.ID {
		return nil, domainerrors.ErrCampaignOwnership
	}

	return campaign, nil
}

// GetCampaigns returns all campaigns of the caller, newest first. A
// missing client profile yields an empty list.
func (s *campaignService) GetCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []*entity.Campaign{}, nil
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	campaigns, err := s.campaignRepo.FindCampaignsByClient(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns by client: %w", err)
	}

	return campaigns, nil
}

// GetCampaignDetail returns one campaign with its creatives.
func (s *campaignService) GetCampaignDetail(ctx context.Context, userID, campaignID uuid.UUID) (*usecase.CampaignDetail, error) {
	campaign, err := s.findOwnedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	creatives, err := s.creativeRepo.FindCreativesByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find creatives by campaign: %w", err)
	}

	return &usecase.CampaignDetail{
		Campaign:  campaign,
		Creatives: creatives,
	}, nil
}

// CreateCampaign creates a new draft campaign for the caller.
func (s *campaignService) CreateCampaign(ctx context.Context, userID uuid.UUID, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrClientProfileNotFound
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	campaign := &entity.Campaign{
		ClientID:     profile.ID,
		CampaignName: input.CampaignName,
		Description:  input.Description,
		City:         input.City,
		ZoneID:       input.ZoneID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		NumberOfCars: input.NumberOfCars,
		DailyBudget:  input.DailyBudget,
		TotalBudget:  input.TotalBudget,
		Status:       entity.CampaignDraft,
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCampaignRepository().CreateCampaign(ctx, campaign); err != nil {
			return fmt.Errorf("failed to create campaign: %w", err)
		}

		auditEntry = newAuditEntry(userID, entity.AuditCampaignCreated, "campaign", campaign.ID, map[string]any{
			"campaign_name": campaign.CampaignName,
			"city":          campaign.City,
			"total_budget":  campaign.TotalBudget,
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return nil, err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return campaign, nil
}

// UploadAsset stores a creative asset and attaches it to the campaign.
// A draft campaign moves to awaiting_creative.
func (s *campaignService) UploadAsset(ctx context.Context, userID uuid.UUID, input *usecase.UploadAssetInput) (*entity.Creative, error) {
	campaign, err := s.findOwnedCampaign(ctx, userID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(input.AssetBase64)
	if err != nil || len(data) == 0 {
		return nil, domainerrors.ErrCreativeAssetInvalid
	}

	assetKey := fmt.Sprintf("creatives/%s/%s", campaign.ID, util.Checksum(data))
	assetURL, err := s.storage.Put(ctx, assetKey, data, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store creative asset: %w", err)
	}

	creative := &entity.Creative{
		CampaignID:     campaign.ID,
		AssetURL:       assetURL,
		AssetKey:       assetKey,
		CreativeType:   input.CreativeType,
		TemplateID:     input.TemplateID,
		ApprovalStatus: entity.ApprovalPending,
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCreativeRepository().CreateCreative(ctx, creative); err != nil {
			return fmt.Errorf("failed to create creative: %w", err)
		}

		// The first upload advances a draft campaign; later uploads
		// leave the workflow state alone.
		if campaign.Status.CanTransitionTo(entity.CampaignAwaitingCreative) {
			if err := factory.NewCampaignRepository().UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignAwaitingCreative, nil); err != nil {
				return fmt.Errorf("failed to update campaign status: %w", err)
			}
		}

		auditEntry = newAuditEntry(userID, entity.AuditCreativeUploaded, "creative", creative.ID, map[string]any{
			"campaign_id":   campaign.ID.String(),
			"creative_type": string(creative.CreativeType),
			"asset_key":     creative.AssetKey,
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return nil, err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return creative, nil
}

// ApproveCreative records the client's own approval of a creative. The
// approval timestamp is overwritten on repeat calls.
func (s *campaignService) ApproveCreative(ctx context.Context, userID, creativeID uuid.UUID) error {
	creative, err := s.findOwnedCreative(ctx, userID, creativeID)
	if err != nil {
		return err
	}

	approvedAt := time.Now()

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCreativeRepository().MarkClientApproved(ctx, creative.ID, approvedAt); err != nil {
			return fmt.Errorf("failed to mark creative client approved: %w", err)
		}

		auditEntry = newAuditEntry(userID, entity.AuditCreativeClientApproved, "creative", creative.ID, map[string]any{
			"campaign_id": creative.CampaignID.String(),
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return nil
}

// SubmitCreative submits a client-approved creative for compliance
// review. The campaign moves to awaiting_approval and a pending queue
// entry is created for the admin team.
func (s *campaignService) SubmitCreative(ctx context.Context, userID, creativeID uuid.UUID) error {
	creative, err := s.findOwnedCreative(ctx, userID, creativeID)
	if err != nil {
		return err
	}

	if creative.ClientApprovedAt == nil {
		return domainerrors.ErrCreativeNotClientApproved
	}

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, creative.CampaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domainerrors.ErrCampaignNotFound
		}

		return fmt.Errorf("failed to find campaign by ID: %w", err)
	}

	if !campaign.Status.CanTransitionTo(entity.CampaignAwaitingApproval) {
		return domainerrors.ErrCampaignStatusTransition
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewCampaignRepository().UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignAwaitingApproval, nil); err != nil {
			return fmt.Errorf("failed to update campaign status: %w", err)
		}

		entry := &entity.ComplianceQueueEntry{
			EntityType: entity.ReviewEntityCreative,
			EntityID:   creative.ID,
			Status:     entity.ReviewPending,
		}
		if err := factory.NewComplianceRepository().CreateEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to create compliance queue entry: %w", err)
		}

		auditEntry = newAuditEntry(userID, entity.AuditCreativeSubmitted, "creative", creative.ID, map[string]any{
			"campaign_id": campaign.ID.String(),
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return nil
}

// findOwnedCreative loads a creative and verifies its campaign belongs
// to the caller's client profile.
func (s *campaignService) findOwnedCreative(ctx context.Context, userID, creativeID uuid.UUID) (*entity.Creative, error) {
	creative, err := s.creativeRepo.FindCreativeByID(ctx, creativeID)
	if err != nil {
		if errors.Is(err, repository.ErrCreativeNotFound) {
			return nil, domainerrors.ErrCreativeNotFound
		}

		return nil, fmt.Errorf("failed to find creative by ID: %w", err)
	}

	if _, err := s.findOwnedCampaign(ctx, userID, creative.CampaignID); err != nil {
		return nil, err
	}

	return creative, nil
}
