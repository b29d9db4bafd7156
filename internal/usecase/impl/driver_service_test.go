package impl

import (
	"context"
	"testing"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	mockRepo "vehiclee/internal/mocks/repository"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driverServiceFixtures holds all test dependencies for driver service tests.
type driverServiceFixtures struct {
	service     usecase.DriverUsecase
	profileRepo *mockRepo.MockProfileRepository
	vehicleRepo *mockRepo.MockVehicleRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	billingRepo *mockRepo.MockBillingRepository
	ticketRepo  *mockRepo.MockTicketRepository
}

func createTestDriverService(t *testing.T) driverServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	billingRepo := mockRepo.NewMockBillingRepository(t)
	ticketRepo := mockRepo.NewMockTicketRepository(t)

	service := NewDriverService(profileRepo, vehicleRepo, deviceRepo, billingRepo, ticketRepo)

	return driverServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		vehicleRepo: vehicleRepo,
		deviceRepo:  deviceRepo,
		billingRepo: billingRepo,
		ticketRepo:  ticketRepo,
	}
}

func TestDriverService_GetProfile_NotFound(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrDriverProfileNotFound)
}

func TestDriverService_GetVehicles_NoProfile(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	vehicles, err := fx.service.GetVehicles(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestDriverService_GetVehicles_DeviceOnlineStates(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.DriverProfile{ID: uuid.New(), UserID: userID}

	freshVehicle := &entity.Vehicle{ID: uuid.New(), DriverID: profile.ID, LicensePlate: "B-AD 1001"}
	staleVehicle := &entity.Vehicle{ID: uuid.New(), DriverID: profile.ID, LicensePlate: "B-AD 1002"}
	silentVehicle := &entity.Vehicle{ID: uuid.New(), DriverID: profile.ID, LicensePlate: "B-AD 1003"}

	freshDevice := &entity.Device{ID: uuid.New(), VehicleID: freshVehicle.ID, HardwareID: "EPD-001"}
	staleDevice := &entity.Device{ID: uuid.New(), VehicleID: staleVehicle.ID, HardwareID: "EPD-002"}
	silentDevice := &entity.Device{ID: uuid.New(), VehicleID: silentVehicle.ID, HardwareID: "EPD-003"}

	now := time.Now()

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.vehicleRepo.EXPECT().
		FindVehiclesByDriver(ctx, profile.ID).
		Return([]*entity.Vehicle{freshVehicle, staleVehicle, silentVehicle}, nil)

	fx.deviceRepo.EXPECT().FindDeviceByVehicle(ctx, freshVehicle.ID).Return(freshDevice, nil)
	fx.deviceRepo.EXPECT().FindDeviceByVehicle(ctx, staleVehicle.ID).Return(staleDevice, nil)
	fx.deviceRepo.EXPECT().FindDeviceByVehicle(ctx, silentVehicle.ID).Return(silentDevice, nil)

	// Heartbeat 4 minutes ago: inside the freshness window.
	fx.deviceRepo.EXPECT().
		LatestTelemetryByDevice(ctx, freshDevice.ID).
		Return(&entity.DeviceTelemetry{DeviceID: freshDevice.ID, HeartbeatAt: now.Add(-4 * time.Minute)}, nil)

	// Heartbeat 6 minutes ago: outside the freshness window.
	fx.deviceRepo.EXPECT().
		LatestTelemetryByDevice(ctx, staleDevice.ID).
		Return(&entity.DeviceTelemetry{DeviceID: staleDevice.ID, HeartbeatAt: now.Add(-6 * time.Minute)}, nil)

	// Never reported at all.
	fx.deviceRepo.EXPECT().
		LatestTelemetryByDevice(ctx, silentDevice.ID).
		Return(nil, nil)

	vehicles, err := fx.service.GetVehicles(ctx, userID)
	require.NoError(t, err)
	require.Len(t, vehicles, 3)

	assert.True(t, vehicles[0].Device.Online)
	assert.False(t, vehicles[1].Device.Online)
	assert.False(t, vehicles[2].Device.Online)
	assert.Nil(t, vehicles[2].Device.Latest)
}

func TestDriverService_GetVehicles_NoDeviceMounted(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.DriverProfile{ID: uuid.New(), UserID: userID}
	vehicle := &entity.Vehicle{ID: uuid.New(), DriverID: profile.ID, LicensePlate: "B-AD 2001"}

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.vehicleRepo.EXPECT().
		FindVehiclesByDriver(ctx, profile.ID).
		Return([]*entity.Vehicle{vehicle}, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByVehicle(ctx, vehicle.ID).
		Return(nil, repository.ErrDeviceNotFound)

	vehicles, err := fx.service.GetVehicles(ctx, userID)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Nil(t, vehicles[0].Device)
}

func TestDriverService_GetEarnings_TotalsSettledPayouts(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.DriverProfile{ID: uuid.New(), UserID: userID}
	payouts := []*entity.Payout{
		{ID: uuid.New(), DriverID: profile.ID, EarningAmount: 120_00, Status: entity.PayoutPaid},
		{ID: uuid.New(), DriverID: profile.ID, EarningAmount: 80_00, Status: entity.PayoutApproved},
		{ID: uuid.New(), DriverID: profile.ID, EarningAmount: 55_00, Status: entity.PayoutPending},
		{ID: uuid.New(), DriverID: profile.ID, EarningAmount: 99_00, Status: entity.PayoutDisputed},
	}

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(profile, nil)

	fx.billingRepo.EXPECT().
		ListPayoutsByDriver(ctx, profile.ID).
		Return(payouts, nil)

	earnings, err := fx.service.GetEarnings(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, earnings.Payouts, 4)
	assert.Equal(t, int64(200_00), earnings.TotalEarned)
}

func TestDriverService_GetEarnings_NoProfile(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindDriverProfileByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	earnings, err := fx.service.GetEarnings(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, earnings.Payouts)
	assert.Zero(t, earnings.TotalEarned)
}

func TestDriverService_GetTickets(t *testing.T) {
	fx := createTestDriverService(t)

	ctx := context.Background()
	userID := uuid.New()
	tickets := []*entity.SupportTicket{
		{ID: uuid.New(), UserID: userID, Subject: "display stuck on old ad"},
	}

	fx.ticketRepo.EXPECT().
		ListTicketsByUser(ctx, userID).
		Return(tickets, nil)

	got, err := fx.service.GetTickets(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, tickets, got)
}
