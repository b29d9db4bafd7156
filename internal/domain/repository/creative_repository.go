package repository

import (
	"context"
	"errors"
	"time"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCreativeNotFound is returned when a creative does not exist.
var ErrCreativeNotFound = errors.New("creative not found")

// CreativeRepository defines persistence operations for campaign creatives.
type CreativeRepository interface {
	// CreateCreative persists a new creative asset record.
	CreateCreative(ctx context.Context, creative *entity.Creative) error

	// FindCreativeByID retrieves a single creative by ID.
	FindCreativeByID(ctx context.Context, id uuid.UUID) (*entity.Creative, error)

	// FindCreativesByCampaign retrieves all creatives of a campaign, newest first.
	FindCreativesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Creative, error)

	// MarkClientApproved stamps the client approval time on a creative.
	MarkClientApproved(ctx context.Context, id uuid.UUID, approvedAt time.Time) error

	// ApplyComplianceReview records the admin decision on a creative.
	ApplyComplianceReview(ctx context.Context, id uuid.UUID, review entity.CreativeReview) error
}
