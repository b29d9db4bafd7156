package postgres

import (
	"context"

	"vehiclee/internal/domain/entity"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// FindVehicleByID retrieves a vehicle by its unique ID.
func (repo *vehicleRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindVehiclesByDriver retrieves all vehicles of a driver profile.
func (repo *vehicleRepository) FindVehiclesByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by driver")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:             data.ID,
		DriverID:       data.DriverID,
		LicensePlate:   data.LicensePlate,
		Make:           data.Make,
		Model:          data.Model,
		Year:           data.Year,
		Color:          data.Color,
		ApprovalStatus: entity.ApprovalStatus(data.ApprovalStatus),
		ApprovedAt:     data.ApprovedAt,
		ApprovedBy:     data.ApprovedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
