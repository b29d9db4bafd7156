package usecase

import (
	"context"
	"time"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput carries the fields of a new draft campaign.
// Budgets are integer minor units (cents).
type CreateCampaignInput struct {
	CampaignName string     `json:"campaign_name" validate:"required,max=255"`
	Description  string     `json:"description"`
	City         string     `json:"city" validate:"required"`
	ZoneID       *uuid.UUID `json:"zone_id"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      time.Time  `json:"end_date" validate:"required,gtfield=StartDate"`
	NumberOfCars int        `json:"number_of_cars" validate:"required,min=1"`
	DailyBudget  int64      `json:"daily_budget" validate:"required,min=1"`
	TotalBudget  int64      `json:"total_budget" validate:"required,min=1"`
}

// UploadAssetInput carries a creative asset as base64-encoded bytes.
type UploadAssetInput struct {
	CampaignID   uuid.UUID           `json:"campaign_id" validate:"required"`
	AssetBase64  string              `json:"asset_base64" validate:"required"`
	ContentType  string              `json:"content_type" validate:"required"`
	CreativeType entity.CreativeType `json:"creative_type" validate:"required"`
	TemplateID   string              `json:"template_id"`
}

// CampaignDetail bundles a campaign with its creatives.
type CampaignDetail struct {
	Campaign  *entity.Campaign   `json:"campaign"`
	Creatives []*entity.Creative `json:"creatives"`
}

// CampaignUsecase defines the advertiser's campaign management use cases.
// Every operation checks that the campaign belongs to the caller's
// client profile.
type CampaignUsecase interface {
	// GetCampaigns returns all campaigns of the caller, newest first.
	// A missing client profile yields an empty list.
	GetCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)

	// GetCampaignDetail returns one campaign with its creatives.
	GetCampaignDetail(ctx context.Context, userID, campaignID uuid.UUID) (*CampaignDetail, error)

	// CreateCampaign creates a new draft campaign for the caller.
	CreateCampaign(ctx context.Context, userID uuid.UUID, input *CreateCampaignInput) (*entity.Campaign, error)

	// UploadAsset stores a creative asset and attaches it to the
	// campaign. A draft campaign moves to awaiting_creative.
	UploadAsset(ctx context.Context, userID uuid.UUID, input *UploadAssetInput) (*entity.Creative, error)

	// ApproveCreative records the client's own approval of a creative.
	ApproveCreative(ctx context.Context, userID, creativeID uuid.UUID) error

	// SubmitCreative submits a client-approved creative for compliance
	// review. The campaign moves to awaiting_approval.
	SubmitCreative(ctx context.Context, userID, creativeID uuid.UUID) error
}
