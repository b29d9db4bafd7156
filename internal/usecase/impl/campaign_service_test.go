package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"testing"
	"time"

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

// campaignServiceFixtures holds all test dependencies for campaign service tests.
type campaignServiceFixtures struct {
	service      usecase.CampaignUsecase
	profileRepo  *mockRepo.MockProfileRepository
	campaignRepo *mockRepo.MockCampaignRepository
	creativeRepo *mockRepo.MockCreativeRepository
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	storage      *mockService.MockObjectStorage
	publisher    *mockService.MockEventPublisher
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	creativeRepo := mockRepo.NewMockCreativeRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	storage := mockService.NewMockObjectStorage(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewCampaignService(
		profileRepo, campaignRepo, creativeRepo,
		txManager, storage, publisher, slog.Default(),
	)

	return campaignServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		campaignRepo: campaignRepo,
		creativeRepo: creativeRepo,
		txManager:    txManager,
		factory:      factory,
		storage:      storage,
		publisher:    publisher,
	}
}

// expectTransaction makes the transaction manager run the given
// function against the mock repository factory.
func (fx campaignServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestCampaignService_GetCampaigns_NoProfile(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	campaigns, err := fx.service.GetCampaigns(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestCampaignService_GetCampaignDetail_OwnershipViolation(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{
		ID:       campaignID,
		ClientID: uuid.New(), // someone else's campaign
		Status:   entity.CampaignDraft,
	}

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	detail, err := fx.service.GetCampaignDetail(ctx, userID, campaignID)
	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignOwnership)
}

func TestCampaignService_CreateCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	input := &usecase.CreateCampaignInput{
		CampaignName: "Spring Launch",
		City:         "Berlin",
		StartDate:    time.Now().AddDate(0, 0, 7),
		EndDate:      time.Now().AddDate(0, 1, 7),
		NumberOfCars: 10,
		DailyBudget:  50_00,
		TotalBudget:  1500_00,
	}

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.expectTransaction(ctx)

	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCampaignRepo.EXPECT().
		CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		RunAndReturn(func(_ context.Context, campaign *entity.Campaign) error {
			campaign.ID = uuid.New()
			return nil
		})

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLogEntry) error {
			assert.Equal(t, entity.AuditCampaignCreated, entry.Action)
			assert.Equal(t, "campaign", entry.EntityType)
			return nil
		})

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	campaign, err := fx.service.CreateCampaign(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, campaign)
	assert.Equal(t, profile.ID, campaign.ClientID)
	assert.Equal(t, entity.CampaignDraft, campaign.Status)
	assert.NotEqual(t, uuid.Nil, campaign.ID)
}

func TestCampaignService_UploadAsset_InvalidBase64(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{ID: campaignID, ClientID: profile.ID, Status: entity.CampaignDraft}

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	creative, err := fx.service.UploadAsset(ctx, userID, &usecase.UploadAssetInput{
		CampaignID:   campaignID,
		AssetBase64:  "not!!valid!!base64",
		ContentType:  "image/png",
		CreativeType: entity.CreativeCustom,
	})
	require.Error(t, err)
	assert.Nil(t, creative)
	assert.ErrorIs(t, err, domainerrors.ErrCreativeAssetInvalid)
}

func TestCampaignService_UploadAsset_AdvancesDraftCampaign(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{ID: campaignID, ClientID: profile.ID, Status: entity.CampaignDraft}
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("fake-png-bytes"), "image/png").
		Return("http://cdn.local/creatives/abc", nil)

	fx.expectTransaction(ctx)

	txCreativeRepo := mockRepo.NewMockCreativeRepository(t)
	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCreativeRepository().Return(txCreativeRepo)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCreativeRepo.EXPECT().
		CreateCreative(ctx, mock.AnythingOfType("*entity.Creative")).
		RunAndReturn(func(_ context.Context, creative *entity.Creative) error {
			creative.ID = uuid.New()
			return nil
		})

	txCampaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaignID, entity.CampaignAwaitingCreative, (*uuid.UUID)(nil)).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	creative, err := fx.service.UploadAsset(ctx, userID, &usecase.UploadAssetInput{
		CampaignID:   campaignID,
		AssetBase64:  payload,
		ContentType:  "image/png",
		CreativeType: entity.CreativeCustom,
	})
	require.NoError(t, err)
	require.NotNil(t, creative)
	assert.Equal(t, entity.ApprovalPending, creative.ApprovalStatus)
	assert.Equal(t, "http://cdn.local/creatives/abc", creative.AssetURL)
}

func TestCampaignService_SubmitCreative_NotClientApproved(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	creativeID := uuid.New()
	campaignID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{ID: campaignID, ClientID: profile.ID, Status: entity.CampaignAwaitingCreative}
	creative := &entity.Creative{
		ID:             creativeID,
		CampaignID:     campaignID,
		ApprovalStatus: entity.ApprovalPending,
		// ClientApprovedAt is nil: never self-approved
	}

	fx.creativeRepo.EXPECT().
		FindCreativeByID(ctx, creativeID).
		Return(creative, nil)

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	err := fx.service.SubmitCreative(ctx, userID, creativeID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreativeNotClientApproved)
}

func TestCampaignService_SubmitCreative_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	creativeID := uuid.New()
	campaignID := uuid.New()
	approvedAt := time.Now().Add(-time.Hour)
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{ID: campaignID, ClientID: profile.ID, Status: entity.CampaignAwaitingCreative}
	creative := &entity.Creative{
		ID:               creativeID,
		CampaignID:       campaignID,
		ApprovalStatus:   entity.ApprovalPending,
		ClientApprovedAt: &approvedAt,
	}

	fx.creativeRepo.EXPECT().
		FindCreativeByID(ctx, creativeID).
		Return(creative, nil)

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	// Once for the ownership check, once for the transition check.
	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	fx.expectTransaction(ctx)

	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txComplianceRepo := mockRepo.NewMockComplianceRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewComplianceRepository().Return(txComplianceRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCampaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaignID, entity.CampaignAwaitingApproval, (*uuid.UUID)(nil)).
		Return(nil)

	txComplianceRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.ComplianceQueueEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.ComplianceQueueEntry) error {
			assert.Equal(t, entity.ReviewEntityCreative, entry.EntityType)
			assert.Equal(t, creativeID, entry.EntityID)
			assert.Equal(t, entity.ReviewPending, entry.Status)
			return nil
		})

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.SubmitCreative(ctx, userID, creativeID)
	require.NoError(t, err)
}

func TestCampaignService_ApproveCreative_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	creativeID := uuid.New()
	campaignID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	campaign := &entity.Campaign{ID: campaignID, ClientID: profile.ID, Status: entity.CampaignAwaitingCreative}
	creative := &entity.Creative{ID: creativeID, CampaignID: campaignID}

	fx.creativeRepo.EXPECT().
		FindCreativeByID(ctx, creativeID).
		Return(creative, nil)

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaignID).
		Return(campaign, nil)

	fx.expectTransaction(ctx)

	txCreativeRepo := mockRepo.NewMockCreativeRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewCreativeRepository().Return(txCreativeRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txCreativeRepo.EXPECT().
		MarkClientApproved(ctx, creativeID, mock.AnythingOfType("time.Time")).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.ApproveCreative(ctx, userID, creativeID)
	require.NoError(t, err)
}
