package impl

import (
	"context"
	"testing"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	mockRepo "vehiclee/internal/mocks/repository"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientServiceFixtures holds all test dependencies for client service tests.
type clientServiceFixtures struct {
	service     usecase.ClientUsecase
	profileRepo *mockRepo.MockProfileRepository
	billingRepo *mockRepo.MockBillingRepository
	zoneRepo    *mockRepo.MockZoneRepository
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	billingRepo := mockRepo.NewMockBillingRepository(t)
	zoneRepo := mockRepo.NewMockZoneRepository(t)
	service := NewClientService(profileRepo, billingRepo, zoneRepo)

	return clientServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		billingRepo: billingRepo,
		zoneRepo:    zoneRepo,
	}
}

func TestClientService_GetProfile_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrClientProfileNotFound)
}

func TestClientService_GetWalletBalance_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.ClientProfile{
		ID:            uuid.New(),
		UserID:        userID,
		WalletBalance: 125_00,
		TotalSpent:    875_00,
	}

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	balance, err := fx.service.GetWalletBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(125_00), balance.Balance)
	assert.Equal(t, int64(875_00), balance.TotalSpent)
}

func TestClientService_GetWalletBalance_NoProfile(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	balance, err := fx.service.GetWalletBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.Balance)
	assert.Equal(t, int64(0), balance.TotalSpent)
}

func TestClientService_GetWalletLedger_NoProfile(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	entries, err := fx.service.GetWalletLedger(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClientService_GetInvoices_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.ClientProfile{ID: uuid.New(), UserID: userID}
	invoices := []*entity.Invoice{
		{ID: uuid.New(), InvoiceNumber: "INV-2026-001", Status: entity.InvoicePaid},
	}

	fx.profileRepo.EXPECT().
		FindClientProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.billingRepo.EXPECT().
		ListInvoicesByClient(ctx, profile.ID).
		Return(invoices, nil)

	got, err := fx.service.GetInvoices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, invoices, got)
}

func TestClientService_GetZones(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	zones := []*entity.Zone{
		{ID: uuid.New(), City: "Berlin", ZoneName: "Mitte", PriceModifier: 1.5},
		{ID: uuid.New(), City: "Berlin", ZoneName: "Spandau", PriceModifier: 0.8},
	}

	fx.zoneRepo.EXPECT().
		ListZones(ctx).
		Return(zones, nil)

	got, err := fx.service.GetZones(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
