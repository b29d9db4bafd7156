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

// allocationRepository implements the repository.AllocationRepository interface.
type allocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository is the constructor for allocationRepository.
func NewAllocationRepository(db *gorm.DB) repository.AllocationRepository {
	return &allocationRepository{
		db: db,
	}
}

// CreateAllocation persists a new allocation.
func (repo *allocationRepository) CreateAllocation(ctx context.Context, allocation *entity.CampaignAllocation) error {
	allocationM := fromAllocationDomain(allocation)

	if err := repo.db.WithContext(ctx).Create(allocationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("invalid campaign or device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create allocation")
	}

	// Update the entity with generated values
	allocation.ID = allocationM.ID
	allocation.CreatedAt = allocationM.CreatedAt
	allocation.UpdatedAt = allocationM.UpdatedAt

	return nil
}

// FindActiveByDevice retrieves the active allocation of a device.
func (repo *allocationRepository) FindActiveByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.CampaignAllocation, error) {
	var allocationM model.CampaignAllocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND status = ?", deviceID, string(entity.AllocationActive)).
		Order("created_at DESC").
		First(&allocationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAllocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find active allocation by device")
	}

	return toAllocationDomain(&allocationM), nil
}

// CompleteActiveByDevice marks every active allocation of a device as
// completed and returns how many rows changed.
func (repo *allocationRepository) CompleteActiveByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignAllocationModel{}).
		Where("device_id = ? AND status = ?", deviceID, string(entity.AllocationActive)).
		Update("status", string(entity.AllocationCompleted))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to complete active allocations by device")
	}

	return result.RowsAffected, nil
}

// CompleteAllocation marks a single allocation as completed.
func (repo *allocationRepository) CompleteAllocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignAllocationModel{}).
		Where("id = ?", id).
		Update("status", string(entity.AllocationCompleted))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete allocation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAllocationNotFound
	}

	return nil
}

// CountActive returns the number of active allocations.
func (repo *allocationRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignAllocationModel{}).
		Where("status = ?", string(entity.AllocationActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active allocations")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAllocationDomain converts a GORM CampaignAllocationModel to a domain entity.
func toAllocationDomain(data *model.CampaignAllocationModel) *entity.CampaignAllocation {
	if data == nil {
		return nil
	}

	return &entity.CampaignAllocation{
		ID:                  data.ID,
		CampaignID:          data.CampaignID,
		DeviceID:            data.DeviceID,
		AllocationStartDate: data.AllocationStartDate,
		AllocationEndDate:   data.AllocationEndDate,
		Status:              entity.AllocationStatus(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromAllocationDomain converts a domain entity to a GORM CampaignAllocationModel.
func fromAllocationDomain(data *entity.CampaignAllocation) *model.CampaignAllocationModel {
	if data == nil {
		return nil
	}

	return &model.CampaignAllocationModel{
		ID:                  data.ID,
		CampaignID:          data.CampaignID,
		DeviceID:            data.DeviceID,
		AllocationStartDate: data.AllocationStartDate,
		AllocationEndDate:   data.AllocationEndDate,
		Status:              string(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
