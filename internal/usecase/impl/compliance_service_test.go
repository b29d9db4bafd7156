package impl

import (
	"context"
	"log/slog"
	"testing"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	mockRepo "vehiclee/internal/mocks/repository"
	mockService "vehiclee/internal/mocks/service"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// complianceServiceFixtures holds all test dependencies for compliance service tests.
type complianceServiceFixtures struct {
	service        usecase.ComplianceUsecase
	complianceRepo *mockRepo.MockComplianceRepository
	campaignRepo   *mockRepo.MockCampaignRepository
	ticketRepo     *mockRepo.MockTicketRepository
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	publisher      *mockService.MockEventPublisher
}

func createTestComplianceService(t *testing.T) complianceServiceFixtures {
	complianceRepo := mockRepo.NewMockComplianceRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewComplianceService(
		complianceRepo, campaignRepo, ticketRepo,
		txManager, publisher, slog.Default(),
	)

	return complianceServiceFixtures{
		service:        service,
		complianceRepo: complianceRepo,
		campaignRepo:   campaignRepo,
		ticketRepo:     ticketRepo,
		txManager:      txManager,
		factory:        factory,
		publisher:      publisher,
	}
}

func (fx complianceServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestComplianceService_GetStats(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()

	fx.complianceRepo.EXPECT().
		CountByStatus(ctx).
		Return(map[entity.ReviewStatus]int64{
			entity.ReviewPending:  3,
			entity.ReviewApproved: 1,
			entity.ReviewRejected: 2,
		}, nil)

	stats, err := fx.service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(2), stats.Rejected)
}

func TestComplianceService_GetStats_EmptyQueue(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()

	fx.complianceRepo.EXPECT().
		CountByStatus(ctx).
		Return(map[entity.ReviewStatus]int64{}, nil)

	stats, err := fx.service.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Approved)
	assert.Zero(t, stats.Rejected)
}

func TestComplianceService_ReviewCreative_RejectWithoutReason(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	entry := &entity.ComplianceQueueEntry{
		ID:         uuid.New(),
		EntityType: entity.ReviewEntityCreative,
		EntityID:   uuid.New(),
		Status:     entity.ReviewPending,
	}

	fx.complianceRepo.EXPECT().
		FindEntryByID(ctx, entry.ID).
		Return(entry, nil)

	err := fx.service.ReviewCreative(ctx, adminID, &usecase.ReviewCreativeInput{
		EntryID:  entry.ID,
		Approved: false,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)
}

func TestComplianceService_ReviewCreative_AlreadyDecided(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	entry := &entity.ComplianceQueueEntry{
		ID:         uuid.New(),
		EntityType: entity.ReviewEntityCreative,
		EntityID:   uuid.New(),
		Status:     entity.ReviewApproved,
	}

	fx.complianceRepo.EXPECT().
		FindEntryByID(ctx, entry.ID).
		Return(entry, nil)

	err := fx.service.ReviewCreative(ctx, adminID, &usecase.ReviewCreativeInput{
		EntryID:  entry.ID,
		Approved: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyDecided)
}

func TestComplianceService_ReviewCreative_ApproveStoresNoReason(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	creativeID := uuid.New()
	entry := &entity.ComplianceQueueEntry{
		ID:         uuid.New(),
		EntityType: entity.ReviewEntityCreative,
		EntityID:   creativeID,
		Status:     entity.ReviewPending,
	}
	reason := "looks fine to me"

	fx.complianceRepo.EXPECT().
		FindEntryByID(ctx, entry.ID).
		Return(entry, nil)

	fx.expectTransaction(ctx)

	txCreativeRepo := mockRepo.NewMockCreativeRepository(t)
	txComplianceRepo := mockRepo.NewMockComplianceRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCreativeRepository().Return(txCreativeRepo)
	fx.factory.EXPECT().NewComplianceRepository().Return(txComplianceRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCreativeRepo.EXPECT().
		ApplyComplianceReview(ctx, creativeID, mock.AnythingOfType("entity.CreativeReview")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, review entity.CreativeReview) error {
			assert.True(t, review.Approved)
			assert.Equal(t, adminID, review.ReviewedBy)
			assert.Nil(t, review.RejectionReason)
			return nil
		})

	// No reason is stored on an approval even when the admin typed one.
	txComplianceRepo.EXPECT().
		UpdateEntryStatus(ctx, entry.ID, entity.ReviewApproved, adminID, (*string)(nil)).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, auditEntry *entity.AuditLogEntry) error {
			assert.Equal(t, entity.AuditCreativeApprovedByAdmin, auditEntry.Action)
			assert.Nil(t, auditEntry.Reason)
			return nil
		})

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.ReviewCreative(ctx, adminID, &usecase.ReviewCreativeInput{
		EntryID:         entry.ID,
		Approved:        true,
		RejectionReason: &reason,
	})
	require.NoError(t, err)
}

func TestComplianceService_ReviewCreative_Reject(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	creativeID := uuid.New()
	entry := &entity.ComplianceQueueEntry{
		ID:         uuid.New(),
		EntityType: entity.ReviewEntityCreative,
		EntityID:   creativeID,
		Status:     entity.ReviewPending,
	}
	reason := "tobacco advertising is not allowed"

	fx.complianceRepo.EXPECT().
		FindEntryByID(ctx, entry.ID).
		Return(entry, nil)

	fx.expectTransaction(ctx)

	txCreativeRepo := mockRepo.NewMockCreativeRepository(t)
	txComplianceRepo := mockRepo.NewMockComplianceRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCreativeRepository().Return(txCreativeRepo)
	fx.factory.EXPECT().NewComplianceRepository().Return(txComplianceRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCreativeRepo.EXPECT().
		ApplyComplianceReview(ctx, creativeID, mock.AnythingOfType("entity.CreativeReview")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, review entity.CreativeReview) error {
			assert.False(t, review.Approved)
			require.NotNil(t, review.RejectionReason)
			assert.Equal(t, reason, *review.RejectionReason)
			return nil
		})

	txComplianceRepo.EXPECT().
		UpdateEntryStatus(ctx, entry.ID, entity.ReviewRejected, adminID, &reason).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.ReviewCreative(ctx, adminID, &usecase.ReviewCreativeInput{
		EntryID:         entry.ID,
		Approved:        false,
		RejectionReason: &reason,
	})
	require.NoError(t, err)
}

func TestComplianceService_ApproveCampaign_NotReviewable(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignDraft}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	err := fx.service.ApproveCampaign(ctx, adminID, campaign.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotReviewable)
}

func TestComplianceService_ApproveCampaign_Success(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignAwaitingApproval}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	fx.expectTransaction(ctx)

	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCampaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignApproved, &adminID).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.ApproveCampaign(ctx, adminID, campaign.ID)
	require.NoError(t, err)
}

func TestComplianceService_RejectCampaign_Success(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	adminID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignAwaitingApproval}
	reason := "budget does not cover the requested fleet"

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	fx.expectTransaction(ctx)

	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCampaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignCancelled, (*uuid.UUID)(nil)).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLogEntry) error {
			assert.Equal(t, entity.AuditCampaignRejectedByAdmin, entry.Action)
			require.NotNil(t, entry.Reason)
			assert.Equal(t, reason, *entry.Reason)
			return nil
		})

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.RejectCampaign(ctx, adminID, campaign.ID, reason)
	require.NoError(t, err)
}

func TestComplianceService_RejectCampaign_EmptyReason(t *testing.T) {
	fx := createTestComplianceService(t)

	err := fx.service.RejectCampaign(context.Background(), uuid.New(), uuid.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)
}

func TestComplianceService_GetQueue_FilterByStatus(t *testing.T) {
	fx := createTestComplianceService(t)

	ctx := context.Background()
	status := entity.ReviewPending
	entries := []*entity.ComplianceQueueEntry{
		{ID: uuid.New(), EntityType: entity.ReviewEntityCreative, Status: entity.ReviewPending},
	}

	fx.complianceRepo.EXPECT().
		ListEntries(ctx, &status).
		Return(entries, nil)

	got, err := fx.service.GetQueue(ctx, &status)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
