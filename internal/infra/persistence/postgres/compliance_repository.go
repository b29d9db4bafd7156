package postgres

import (
	"context"
	"encoding/json"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// complianceRepository implements the repository.ComplianceRepository interface.
type complianceRepository struct {
	db *gorm.DB
}

// NewComplianceRepository is the constructor for complianceRepository.
func NewComplianceRepository(db *gorm.DB) repository.ComplianceRepository {
	return &complianceRepository{
		db: db,
	}
}

// CreateEntry appends a new pending entry to the queue.
func (repo *complianceRepository) CreateEntry(ctx context.Context, entry *entity.ComplianceQueueEntry) error {
	entryM, err := fromComplianceEntryDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves a single queue entry by ID.
func (repo *complianceRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceQueueEntry, error) {
	var entryM model.ComplianceQueueModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find review entry by ID")
	}

	return toComplianceEntryDomain(&entryM)
}

// ListEntries retrieves queue entries, oldest first. A nil status
// returns all entries regardless of state.
func (repo *complianceRepository) ListEntries(ctx context.Context, status *entity.ReviewStatus) ([]*entity.ComplianceQueueEntry, error) {
	query := repo.db.WithContext(ctx).Order("created_at ASC")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var entryModels []*model.ComplianceQueueModel
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list review entries")
	}

	entries := make([]*entity.ComplianceQueueEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entry, err := toComplianceEntryDomain(entryM)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// CountByStatus returns the number of queue entries per review status.
func (repo *complianceRepository) CountByStatus(ctx context.Context) (map[entity.ReviewStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ComplianceQueueModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count review entries by status")
	}

	counts := make(map[entity.ReviewStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.ReviewStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// UpdateEntryStatus records the reviewer's decision on an entry.
func (repo *complianceRepository) UpdateEntryStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus, reviewedBy uuid.UUID, reason *string) error {
	updates := map[string]any{
		"status":      string(status),
		"reviewed_by": reviewedBy,
		"reviewed_at": gorm.Expr("NOW()"),
	}
	if reason != nil {
		updates["rejection_reason"] = *reason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ComplianceQueueModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review entry status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplianceEntryDomain converts a GORM ComplianceQueueModel to a domain entity.
func toComplianceEntryDomain(data *model.ComplianceQueueModel) (*entity.ComplianceQueueEntry, error) {
	if data == nil {
		return nil, nil
	}

	var categories []string
	if len(data.RestrictedCategories) > 0 {
		if err := json.Unmarshal(data.RestrictedCategories, &categories); err != nil {
			return nil, errors.Wrap(err, "failed to decode restricted categories")
		}
	}

	return &entity.ComplianceQueueEntry{
		ID:                   data.ID,
		EntityType:           entity.ReviewEntityType(data.EntityType),
		EntityID:             data.EntityID,
		Status:               entity.ReviewStatus(data.Status),
		ReviewedBy:           data.ReviewedBy,
		ReviewedAt:           data.ReviewedAt,
		RejectionReason:      data.RejectionReason,
		RestrictedCategories: categories,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// fromComplianceEntryDomain converts a domain entity to a GORM ComplianceQueueModel.
func fromComplianceEntryDomain(data *entity.ComplianceQueueEntry) (*model.ComplianceQueueModel, error) {
	if data == nil {
		return nil, nil
	}

	var categories []byte
	if len(data.RestrictedCategories) > 0 {
		encoded, err := json.Marshal(data.RestrictedCategories)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode restricted categories")
		}
		categories = encoded
	}

	return &model.ComplianceQueueModel{
		ID:                   data.ID,
		EntityType:           string(data.EntityType),
		EntityID:             data.EntityID,
		Status:               string(data.Status),
		ReviewedBy:           data.ReviewedBy,
		ReviewedAt:           data.ReviewedAt,
		RejectionReason:      data.RejectionReason,
		RestrictedCategories: categories,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}
