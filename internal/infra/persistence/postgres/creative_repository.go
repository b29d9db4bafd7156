package postgres

import (
	"context"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// creativeRepository implements the repository.CreativeRepository interface.
type creativeRepository struct {
	db *gorm.DB
}

// NewCreativeRepository is the constructor for creativeRepository.
func NewCreativeRepository(db *gorm.DB) repository.CreativeRepository {
	return &creativeRepository{
		db: db,
	}
}

// CreateCreative persists a new creative asset record.
func (repo *creativeRepository) CreateCreative(ctx context.Context, creative *entity.Creative) error {
	creativeM := fromCreativeDomain(creative)

	if err := repo.db.WithContext(ctx).Create(creativeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("invalid campaign reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required creative information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create creative")
	}

	// Update the entity with generated values
	creative.ID = creativeM.ID
	creative.CreatedAt = creativeM.CreatedAt
	creative.UpdatedAt = creativeM.UpdatedAt

	return nil
}

// FindCreativeByID retrieves a single creative by ID.
func (repo *creativeRepository) FindCreativeByID(ctx context.Context, id uuid.UUID) (*entity.Creative, error) {
	var creativeM model.CreativeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&creativeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCreativeNotFound
		}

		return nil, errors.Wrap(err, "failed to find creative by ID")
	}

	return toCreativeDomain(&creativeM), nil
}

// FindCreativesByCampaign retrieves all creatives of a campaign.
func (repo *creativeRepository) FindCreativesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Creative, error) {
	var creativeModels []*model.CreativeModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&creativeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find creatives by campaign")
	}

	creatives := make([]*entity.Creative, 0, len(creativeModels))
	for _, creativeM := range creativeModels {
		creatives = append(creatives, toCreativeDomain(creativeM))
	}

	return creatives, nil
}

// MarkClientApproved stamps the client approval time on a creative.
func (repo *creativeRepository) MarkClientApproved(ctx context.Context, id uuid.UUID, approvedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CreativeModel{}).
		Where("id = ?", id).
		Update("client_approved_at", approvedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark creative client approved")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCreativeNotFound
	}

	return nil
}

// ApplyComplianceReview records the admin decision on a creative.
// Approval stamps the reviewer and time; rejection stores the reason
// and nulls both compliance approval columns, so a rejected creative
// never carries reviewer attribution.
func (repo *creativeRepository) ApplyComplianceReview(ctx context.Context, id uuid.UUID, review entity.CreativeReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CreativeModel{}).
		Where("id = ?", id).
		Updates(complianceReviewUpdates(review))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to apply compliance review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCreativeNotFound
	}

	return nil
}

// complianceReviewUpdates builds the column updates for an admin
// decision on a creative.
func complianceReviewUpdates(review entity.CreativeReview) map[string]any {
	if review.Approved {
		return map[string]any{
			"approval_status":        string(entity.ApprovalApproved),
			"compliance_approved_at": review.ReviewedAt,
			"compliance_approved_by": review.ReviewedBy,
		}
	}

	return map[string]any{
		"approval_status":        string(entity.ApprovalRejected),
		"compliance_approved_at": nil,
		"compliance_approved_by": nil,
		"rejection_reason":       review.RejectionReason,
	}
}

// --- Mapper Functions ---

// toCreativeDomain converts a GORM CreativeModel to a domain Creative entity.
func toCreativeDomain(data *model.CreativeModel) *entity.Creative {
	if data == nil {
		return nil
	}

	return &entity.Creative{
		ID:                   data.ID,
		CampaignID:           data.CampaignID,
		AssetURL:             data.AssetURL,
		AssetKey:             data.AssetKey,
		CreativeType:         entity.CreativeType(data.CreativeType),
		TemplateID:           data.TemplateID,
		ApprovalStatus:       entity.ApprovalStatus(data.ApprovalStatus),
		ClientApprovedAt:     data.ClientApprovedAt,
		ComplianceApprovedAt: data.ComplianceApprovedAt,
		ComplianceApprovedBy: data.ComplianceApprovedBy,
		RejectionReason:      data.RejectionReason,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromCreativeDomain converts a domain Creative entity to a GORM CreativeModel.
func fromCreativeDomain(data *entity.Creative) *model.CreativeModel {
	if data == nil {
		return nil
	}

	return &model.CreativeModel{
		ID:                   data.ID,
		CampaignID:           data.CampaignID,
		AssetURL:             data.AssetURL,
		AssetKey:             data.AssetKey,
		CreativeType:         string(data.CreativeType),
		TemplateID:           data.TemplateID,
		ApprovalStatus:       string(data.ApprovalStatus),
		ClientApprovedAt:     data.ClientApprovedAt,
		ComplianceApprovedAt: data.ComplianceApprovedAt,
		ComplianceApprovedBy: data.ComplianceApprovedBy,
		RejectionReason:      data.RejectionReason,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
