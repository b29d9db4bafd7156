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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindClientProfileByUserID retrieves the client profile owned by the given user.
func (repo *profileRepository) FindClientProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profileM model.ClientProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find client profile by user ID")
	}

	return toClientProfileDomain(&profileM), nil
}

// FindClientProfileByID retrieves a client profile by its own ID.
func (repo *profileRepository) FindClientProfileByID(ctx context.Context, id uuid.UUID) (*entity.ClientProfile, error) {
	var profileM model.ClientProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find client profile by ID")
	}

	return toClientProfileDomain(&profileM), nil
}

// FindDriverProfileByUserID retrieves the driver profile owned by the given user.
func (repo *profileRepository) FindDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error) {
	var profileM model.DriverProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver profile by user ID")
	}

	return toDriverProfileDomain(&profileM), nil
}

// FindDriverProfileByID retrieves a driver profile by its own ID.
func (repo *profileRepository) FindDriverProfileByID(ctx context.Context, id uuid.UUID) (*entity.DriverProfile, error) {
	var profileM model.DriverProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver profile by ID")
	}

	return toDriverProfileDomain(&profileM), nil
}

// --- Mapper Functions ---

// toClientProfileDomain converts a GORM ClientProfileModel to a domain ClientProfile entity.
func toClientProfileDomain(data *model.ClientProfileModel) *entity.ClientProfile {
	if data == nil {
		return nil
	}

	return &entity.ClientProfile{
		ID:             data.ID,
		UserID:         data.UserID,
		CompanyName:    data.CompanyName,
		CompanyVATID:   data.CompanyVATID,
		CompanyCountry: data.CompanyCountry,
		ContactPerson:  data.ContactPerson,
		WalletBalance:  data.WalletBalance,
		TotalSpent:     data.TotalSpent,
		KYCStatus:      entity.ApprovalStatus(data.KYCStatus),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toDriverProfileDomain converts a GORM DriverProfileModel to a domain DriverProfile entity.
func toDriverProfileDomain(data *model.DriverProfileModel) *entity.DriverProfile {
	if data == nil {
		return nil
	}

	return &entity.DriverProfile{
		ID:                 data.ID,
		UserID:             data.UserID,
		LicenseNumber:      data.LicenseNumber,
		LicenseExpiry:      data.LicenseExpiry,
		DocumentStatus:     entity.ApprovalStatus(data.DocumentStatus),
		DocumentReviewedAt: data.DocumentReviewedAt,
		DocumentReviewedBy: data.DocumentReviewedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
