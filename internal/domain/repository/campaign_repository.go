package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is returned when a campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines persistence operations for advertising campaigns.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a single campaign by ID.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindCampaignsByClient retrieves all campaigns owned by the given
	// client profile, newest first.
	FindCampaignsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Campaign, error)

	// UpdateCampaignStatus moves a campaign to a new status and records
	// the compliance reviewer when one is given.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, reviewedBy *uuid.UUID) error
}
