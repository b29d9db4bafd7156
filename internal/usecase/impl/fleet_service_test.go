package impl

import (
	"context"
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

// fleetServiceFixtures holds all test dependencies for fleet service tests.
type fleetServiceFixtures struct {
	service        usecase.FleetUsecase
	deviceRepo     *mockRepo.MockDeviceRepository
	allocationRepo *mockRepo.MockAllocationRepository
	campaignRepo   *mockRepo.MockCampaignRepository
	vehicleRepo    *mockRepo.MockVehicleRepository
	profileRepo    *mockRepo.MockProfileRepository
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	hasher         *mockService.MockSecretHasher
	publisher      *mockService.MockEventPublisher
}

func createTestFleetService(t *testing.T) fleetServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	allocationRepo := mockRepo.NewMockAllocationRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	hasher := mockService.NewMockSecretHasher(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewFleetService(
		deviceRepo, allocationRepo, campaignRepo, vehicleRepo, profileRepo,
		txManager, hasher, publisher, slog.Default(),
	)

	return fleetServiceFixtures{
		service:        service,
		deviceRepo:     deviceRepo,
		allocationRepo: allocationRepo,
		campaignRepo:   campaignRepo,
		vehicleRepo:    vehicleRepo,
		profileRepo:    profileRepo,
		txManager:      txManager,
		factory:        factory,
		hasher:         hasher,
		publisher:      publisher,
	}
}

func (fx fleetServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestFleetService_GetFleetOverview(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	now := time.Now()

	onlineID := uuid.New()
	staleID := uuid.New()
	lowBatteryID := uuid.New()

	fx.deviceRepo.EXPECT().
		CountDevices(ctx).
		Return(5, nil)

	// Two devices inside the freshness window (one of them low on
	// battery), one stale, two that never reported.
	fx.deviceRepo.EXPECT().
		LatestTelemetryPerDevice(ctx).
		Return(map[uuid.UUID]*entity.DeviceTelemetry{
			onlineID:     {DeviceID: onlineID, HeartbeatAt: now.Add(-1 * time.Minute), BatteryLevel: 90},
			lowBatteryID: {DeviceID: lowBatteryID, HeartbeatAt: now.Add(-2 * time.Minute), BatteryLevel: 15},
			staleID:      {DeviceID: staleID, HeartbeatAt: now.Add(-20 * time.Minute), BatteryLevel: 60},
		}, nil)

	fx.allocationRepo.EXPECT().
		CountActive(ctx).
		Return(3, nil)

	overview, err := fx.service.GetFleetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), overview.TotalDevices)
	assert.Equal(t, int64(2), overview.OnlineDevices)
	assert.Equal(t, int64(3), overview.OfflineDevices)
	assert.Equal(t, int64(1), overview.LowBatteryDevices)
	assert.Equal(t, int64(3), overview.ActiveAllocations)
}

func TestFleetService_GetDevices_FilterOnline(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	now := time.Now()

	onlineDevice := &entity.Device{ID: uuid.New(), HardwareID: "EPD-100"}
	offlineDevice := &entity.Device{ID: uuid.New(), HardwareID: "EPD-200"}

	fx.deviceRepo.EXPECT().
		ListDevices(ctx, 20, 0).
		Return([]*entity.Device{onlineDevice, offlineDevice}, nil)

	fx.deviceRepo.EXPECT().
		CountDevices(ctx).
		Return(2, nil)

	fx.deviceRepo.EXPECT().
		LatestTelemetryPerDevice(ctx).
		Return(map[uuid.UUID]*entity.DeviceTelemetry{
			onlineDevice.ID: {DeviceID: onlineDevice.ID, HeartbeatAt: now.Add(-30 * time.Second)},
		}, nil)

	status := "online"
	list, err := fx.service.GetDevices(ctx, &usecase.DeviceListInput{Status: &status})
	require.NoError(t, err)
	require.Len(t, list.Devices, 1)
	assert.Equal(t, onlineDevice.ID, list.Devices[0].Device.ID)
	assert.True(t, list.Devices[0].Online)
	// Total counts the whole fleet, not the filtered page.
	assert.Equal(t, int64(2), list.Total)
}

func TestFleetService_GetDeviceDetail_WithActiveAllocation(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	vehicle := &entity.Vehicle{ID: uuid.New(), DriverID: uuid.New(), LicensePlate: "ABC-1234"}
	driver := &entity.DriverProfile{ID: vehicle.DriverID}
	device := &entity.Device{ID: uuid.New(), VehicleID: vehicle.ID, HardwareID: "EPD-300"}
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignActive}
	allocation := &entity.CampaignAllocation{
		ID:         uuid.New(),
		CampaignID: campaign.ID,
		DeviceID:   device.ID,
		Status:     entity.AllocationActive,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	fx.deviceRepo.EXPECT().
		LatestTelemetryByDevice(ctx, device.ID).
		Return(nil, nil)

	fx.vehicleRepo.EXPECT().
		FindVehicleByID(ctx, vehicle.ID).
		Return(vehicle, nil)

	fx.profileRepo.EXPECT().
		FindDriverProfileByID(ctx, vehicle.DriverID).
		Return(driver, nil)

	fx.allocationRepo.EXPECT().
		FindActiveByDevice(ctx, device.ID).
		Return(allocation, nil)

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	detail, err := fx.service.GetDeviceDetail(ctx, device.ID)
	require.NoError(t, err)
	assert.False(t, detail.Online)
	assert.Equal(t, vehicle, detail.Vehicle)
	assert.Equal(t, driver, detail.Driver)
	assert.Equal(t, allocation, detail.ActiveAllocation)
	assert.Equal(t, campaign, detail.Campaign)
}

func TestFleetService_AllocateCampaign_ReplacesActiveAllocation(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	adminID := uuid.New()
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignApproved}
	device := &entity.Device{ID: uuid.New(), HardwareID: "EPD-400"}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	fx.expectTransaction(ctx)

	txAllocationRepo := mockRepo.NewMockAllocationRepository(t)
	txCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewAllocationRepository().Return(txAllocationRepo)
	fx.factory.EXPECT().NewCampaignRepository().Return(txCampaignRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	// The device already carried an allocation; it gets completed first.
	txAllocationRepo.EXPECT().
		CompleteActiveByDevice(ctx, device.ID).
		Return(1, nil)

	txAllocationRepo.EXPECT().
		CreateAllocation(ctx, mock.AnythingOfType("*entity.CampaignAllocation")).
		RunAndReturn(func(_ context.Context, allocation *entity.CampaignAllocation) error {
			allocation.ID = uuid.New()
			assert.Equal(t, entity.AllocationActive, allocation.Status)
			assert.WithinDuration(t, allocation.AllocationStartDate.Add(30*24*time.Hour), allocation.AllocationEndDate, time.Second)
			return nil
		})

	// First allocation of an approved campaign activates it.
	txCampaignRepo.EXPECT().
		UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignActive, (*uuid.UUID)(nil)).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	allocation, err := fx.service.AllocateCampaign(ctx, adminID, campaign.ID, device.ID)
	require.NoError(t, err)
	require.NotNil(t, allocation)
	assert.Equal(t, campaign.ID, allocation.CampaignID)
	assert.Equal(t, device.ID, allocation.DeviceID)
}

func TestFleetService_AllocateCampaign_CampaignNotAllocatable(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	campaign := &entity.Campaign{ID: uuid.New(), Status: entity.CampaignDraft}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(ctx, campaign.ID).
		Return(campaign, nil)

	allocation, err := fx.service.AllocateCampaign(ctx, uuid.New(), campaign.ID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, allocation)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignStatusTransition)
}

func TestFleetService_DeallocateCampaign_NoActiveAllocation(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), HardwareID: "EPD-500"}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	fx.allocationRepo.EXPECT().
		FindActiveByDevice(ctx, device.ID).
		Return(nil, repository.ErrAllocationNotFound)

	err := fx.service.DeallocateCampaign(ctx, uuid.New(), device.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveAllocation)
}

func TestFleetService_DeallocateCampaign_Success(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	adminID := uuid.New()
	device := &entity.Device{ID: uuid.New(), HardwareID: "EPD-600"}
	allocation := &entity.CampaignAllocation{
		ID:         uuid.New(),
		CampaignID: uuid.New(),
		DeviceID:   device.ID,
		Status:     entity.AllocationActive,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, device.ID).
		Return(device, nil)

	fx.allocationRepo.EXPECT().
		FindActiveByDevice(ctx, device.ID).
		Return(allocation, nil)

	fx.expectTransaction(ctx)

	txAllocationRepo := mockRepo.NewMockAllocationRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	fx.factory.EXPECT().NewAllocationRepository().Return(txAllocationRepo)
	fx.factory.EXPECT().NewAuditLogRepository().Return(txAuditRepo)

	txAllocationRepo.EXPECT().
		CompleteAllocation(ctx, allocation.ID).
		Return(nil)

	txAuditRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLogEntry) error {
			assert.Equal(t, entity.AuditCampaignDeallocated, entry.Action)
			return nil
		})

	fx.publisher.EXPECT().
		PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(nil)

	err := fx.service.DeallocateCampaign(ctx, adminID, device.ID)
	require.NoError(t, err)
}

func TestFleetService_RecordHeartbeat_WrongSecret(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), HardwareID: "EPD-700", SecretHash: "$2a$10$hash"}

	fx.deviceRepo.EXPECT().
		FindDeviceByHardwareID(ctx, "EPD-700").
		Return(device, nil)

	fx.hasher.EXPECT().
		Check("wrong-secret", device.SecretHash).
		Return(false)

	err := fx.service.RecordHeartbeat(ctx, &usecase.HeartbeatInput{
		HardwareID: "EPD-700",
		Secret:     "wrong-secret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceSecretInvalid)
}

func TestFleetService_RecordHeartbeat_Success(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), HardwareID: "EPD-800", SecretHash: "$2a$10$hash"}

	fx.deviceRepo.EXPECT().
		FindDeviceByHardwareID(ctx, "EPD-800").
		Return(device, nil)

	fx.hasher.EXPECT().
		Check("device-secret", device.SecretHash).
		Return(true)

	fx.expectTransaction(ctx)

	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	fx.factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)

	txDeviceRepo.EXPECT().
		AppendTelemetry(ctx, mock.AnythingOfType("*entity.DeviceTelemetry")).
		RunAndReturn(func(_ context.Context, sample *entity.DeviceTelemetry) error {
			assert.Equal(t, device.ID, sample.DeviceID)
			assert.Equal(t, 87, sample.BatteryLevel)
			assert.Equal(t, "abc123", sample.ContentHash)
			return nil
		})

	txDeviceRepo.EXPECT().
		UpdateDeviceHeartbeat(ctx, device.ID, mock.AnythingOfType("time.Time"), "abc123").
		Return(nil)

	err := fx.service.RecordHeartbeat(ctx, &usecase.HeartbeatInput{
		HardwareID:   "EPD-800",
		Secret:       "device-secret",
		ContentHash:  "abc123",
		Uptime:       3600,
		BatteryLevel: 87,
	})
	require.NoError(t, err)
}

func TestFleetService_GetDeviceTelemetry_DeviceNotFound(t *testing.T) {
	fx := createTestFleetService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	samples, err := fx.service.GetDeviceTelemetry(ctx, deviceID)
	require.Error(t, err)
	assert.Nil(t, samples)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
