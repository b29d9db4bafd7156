package postgres

import (
	"context"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// CreateCampaign persists a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("invalid client or zone reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	// Update the entity with generated values
	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaignByID retrieves a single campaign by ID.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// FindCampaignsByClient retrieves all campaigns owned by the given client profile.
func (repo *campaignRepository) FindCampaignsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by client")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// UpdateCampaignStatus moves a campaign to a new status and records the
// compliance reviewer when one is given.
func (repo *campaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, reviewedBy *uuid.UUID) error {
	updates := map[string]any{
		"status": string(status),
	}
	if reviewedBy != nil {
		updates["compliance_approved_by"] = *reviewedBy
		updates["compliance_approved_at"] = gorm.Expr("NOW()")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCampaignDomain converts a GORM CampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:                   data.ID,
		ClientID:             data.ClientID,
		CampaignName:         data.CampaignName,
		Description:          data.Description,
		City:                 data.City,
		ZoneID:               data.ZoneID,
		StartDate:            data.StartDate,
		EndDate:              data.EndDate,
		NumberOfCars:         data.NumberOfCars,
		DailyBudget:          data.DailyBudget,
		TotalBudget:          data.TotalBudget,
		Status:               entity.CampaignStatus(data.Status),
		ComplianceApprovedAt: data.ComplianceApprovedAt,
		ComplianceApprovedBy: data.ComplianceApprovedBy,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromCampaignDomain converts a domain Campaign entity to a GORM CampaignModel.
func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:                   data.ID,
		ClientID:             data.ClientID,
		CampaignName:         data.CampaignName,
		Description:          data.Description,
		City:                 data.City,
		ZoneID:               data.ZoneID,
		StartDate:            data.StartDate,
		EndDate:              data.EndDate,
		NumberOfCars:         data.NumberOfCars,
		DailyBudget:          data.DailyBudget,
		TotalBudget:          data.TotalBudget,
		Status:               string(data.Status),
		ComplianceApprovedAt: data.ComplianceApprovedAt,
		ComplianceApprovedBy: data.ComplianceApprovedBy,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
