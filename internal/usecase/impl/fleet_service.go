package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/domain/service"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
)

const (
	// defaultDeviceListLimit pages the fleet list when the caller gives no limit.
	defaultDeviceListLimit = 20

	// allocationWindow is the default validity of a new allocation.
	allocationWindow = 30 * 24 * time.Hour

	// telemetryHistoryLimit caps the device telemetry history endpoint.
	telemetryHistoryLimit = 100
)

type fleetService struct {
	deviceRepo     repository.DeviceRepository
	allocationRepo repository.AllocationRepository
	campaignRepo   repository.CampaignRepository
	vehicleRepo    repository.VehicleRepository
	profileRepo    repository.ProfileRepository
	txManager      repository.TransactionManager
	hasher         service.SecretHasher
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewFleetService creates a new fleet service instance
func NewFleetService(
	deviceRepo repository.DeviceRepository,
	allocationRepo repository.AllocationRepository,
	campaignRepo repository.CampaignRepository,
	vehicleRepo repository.VehicleRepository,
	profileRepo repository.ProfileRepository,
	txManager repository.TransactionManager,
	hasher service.SecretHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FleetUsecase {
	return &fleetService{
		deviceRepo:     deviceRepo,
		allocationRepo: allocationRepo,
		campaignRepo:   campaignRepo,
		vehicleRepo:    vehicleRepo,
		profileRepo:    profileRepo,
		txManager:      txManager,
		hasher:         hasher,
		publisher:      publisher,
		logger:         logger,
	}
}

// GetFleetOverview returns aggregate fleet health counters. Online and
// low-battery counts derive from the newest telemetry row per device;
// devices that never reported count as offline.
func (s *fleetService) GetFleetOverview(ctx context.Context) (*usecase.FleetOverview, error) {
	total, err := s.deviceRepo.CountDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count devices: %w", err)
	}

	latest, err := s.deviceRepo.LatestTelemetryPerDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest telemetry per device: %w", err)
	}

	now := time.Now()
	var online, lowBattery int64
	for _, sample := range latest {
		if sample.OnlineAt(now) {
			online++
		}
		if sample.BatteryLevel < entity.LowBatteryThreshold {
			lowBattery++
		}
	}

	active, err := s.allocationRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active allocations: %w", err)
	}

	return &usecase.FleetOverview{
		TotalDevices:      total,
		OnlineDevices:     online,
		OfflineDevices:    total - online,
		LowBatteryDevices: lowBattery,
		ActiveAllocations: active,
	}, nil
}

// GetDevices returns one page of devices with derived status. The
// online/offline filter applies after paging; Total always counts the
// whole fleet.
func (s *fleetService) GetDevices(ctx context.Context, input *usecase.DeviceListInput) (*usecase.DeviceList, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultDeviceListLimit
	}

	devices, err := s.deviceRepo.ListDevices(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	total, err := s.deviceRepo.CountDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count devices: %w", err)
	}

	latest, err := s.deviceRepo.LatestTelemetryPerDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest telemetry per device: %w", err)
	}

	now := time.Now()
	result := make([]*usecase.DeviceWithStatus, 0, len(devices))
	for _, device := range devices {
		sample := latest[device.ID]
		online := sample.OnlineAt(now)

		if input.Status != nil {
			if *input.Status == "online" && !online {
				continue
			}
			if *input.Status == "offline" && online {
				continue
			}
		}

		result = append(result, &usecase.DeviceWithStatus{
			Device: device,
			Latest: sample,
			Online: online,
		})
	}

	return &usecase.DeviceList{
		Devices: result,
		Total:   total,
	}, nil
}

// GetDeviceDetail returns one device with the vehicle and driver it is
// mounted on, its latest telemetry, and the campaign it is currently
// showing, if any.
func (s *fleetService) GetDeviceDetail(ctx context.Context, deviceID uuid.UUID) (*usecase.DeviceDetail, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	sample, err := s.deviceRepo.LatestTelemetryByDevice(ctx, device.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest telemetry: %w", err)
	}

	detail := &usecase.DeviceDetail{
		Device: device,
		Latest: sample,
		Online: sample.OnlineAt(time.Now()),
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, device.VehicleID)
	if err != nil {
		if !errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, fmt.Errorf("failed to find vehicle: %w", err)
		}
	} else {
		detail.Vehicle = vehicle

		driver, err := s.profileRepo.FindDriverProfileByID(ctx, vehicle.DriverID)
		if err != nil {
			if !errors.Is(err, repository.ErrProfileNotFound) {
				return nil, fmt.Errorf("failed to find driver profile: %w", err)
			}
		} else {
			detail.Driver = driver
		}
	}

	allocation, err := s.allocationRepo.FindActiveByDevice(ctx, device.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrAllocationNotFound) {
			return nil, fmt.Errorf("failed to find active allocation: %w", err)
		}

		return detail, nil
	}
	detail.ActiveAllocation = allocation

	campaign, err := s.campaignRepo.FindCampaignByID(ctx, allocation.CampaignID)
	if err != nil {
		if !errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, fmt.Errorf("failed to find allocated campaign: %w", err)
		}
	} else {
		detail.Campaign = campaign
	}

	return detail, nil
}

// GetDeviceTelemetry returns the most recent telemetry samples of a
// device, newest first.
func (s *fleetService) GetDeviceTelemetry(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceTelemetry, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	samples, err := s.deviceRepo.ListTelemetryByDevice(ctx, device.ID, telemetryHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry: %w", err)
	}

	return samples, nil
}

// AllocateCampaign puts a campaign on a device. Any allocation the
// device already carries is completed in the same transaction, keeping
// the one-active-allocation-per-device invariant. The first allocation
// of an approved campaign activates it.
func (s *fleetService) AllocateCampaign(ctx context.Context, adminID, campaignID, deviceID uuid.UUID) (*entity.CampaignAllocation, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, fmt.Errorf("failed to find campaign by ID: %w", err)
	}

	if campaign.Status != entity.CampaignApproved && campaign.Status != entity.CampaignActive {
		return nil, domainerrors.ErrCampaignStatusTransition
	}

	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	allocation := &entity.CampaignAllocation{
		CampaignID:          campaign.ID,
		DeviceID:            device.ID,
		AllocationStartDate: now,
		AllocationEndDate:   now.Add(allocationWindow),
		Status:              entity.AllocationActive,
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		replaced, err := factory.NewAllocationRepository().CompleteActiveByDevice(ctx, device.ID)
		if err != nil {
			return fmt.Errorf("failed to complete previous allocations: %w", err)
		}

		if err := factory.NewAllocationRepository().CreateAllocation(ctx, allocation); err != nil {
			return fmt.Errorf("failed to create allocation: %w", err)
		}

		if campaign.Status == entity.CampaignApproved {
			if err := factory.NewCampaignRepository().UpdateCampaignStatus(ctx, campaign.ID, entity.CampaignActive, nil); err != nil {
				return fmt.Errorf("failed to activate campaign: %w", err)
			}
		}

		auditEntry = newAuditEntry(adminID, entity.AuditCampaignAllocatedToDevice, "campaign_allocation", allocation.ID, map[string]any{
			"campaign_id":          campaign.ID.String(),
			"device_id":            device.ID.String(),
			"replaced_allocations": replaced,
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return nil, err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return allocation, nil
}

// DeallocateCampaign completes the device's active allocation.
func (s *fleetService) DeallocateCampaign(ctx context.Context, adminID, deviceID uuid.UUID) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	allocation, err := s.allocationRepo.FindActiveByDevice(ctx, device.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAllocationNotFound) {
			return domainerrors.ErrNoActiveAllocation
		}

		return fmt.Errorf("failed to find active allocation: %w", err)
	}

	var auditEntry *entity.AuditLogEntry
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAllocationRepository().CompleteAllocation(ctx, allocation.ID); err != nil {
			return fmt.Errorf("failed to complete allocation: %w", err)
		}

		auditEntry = newAuditEntry(adminID, entity.AuditCampaignDeallocated, "campaign_allocation", allocation.ID, map[string]any{
			"campaign_id": allocation.CampaignID.String(),
			"device_id":   device.ID.String(),
		}, nil)

		return factory.NewAuditLogRepository().Append(ctx, auditEntry)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, s.publisher, s.logger, auditEntry)

	return nil
}

// RecordHeartbeat authenticates a device by hardware ID and pre-shared
// secret, then appends one telemetry sample and stamps the device row.
func (s *fleetService) RecordHeartbeat(ctx context.Context, input *usecase.HeartbeatInput) error {
	device, err := s.deviceRepo.FindDeviceByHardwareID(ctx, input.HardwareID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by hardware ID: %w", err)
	}

	if !s.hasher.Check(input.Secret, device.SecretHash) {
		return domainerrors.ErrDeviceSecretInvalid
	}

	now := time.Now()
	sample := &entity.DeviceTelemetry{
		DeviceID:       device.ID,
		HeartbeatAt:    now,
		ContentHash:    input.ContentHash,
		Uptime:         input.Uptime,
		BatteryLevel:   input.BatteryLevel,
		SignalStrength: input.SignalStrength,
		ErrorCode:      input.ErrorCode,
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		deviceRepo := factory.NewDeviceRepository()

		if err := deviceRepo.AppendTelemetry(ctx, sample); err != nil {
			return fmt.Errorf("failed to append telemetry: %w", err)
		}

		if err := deviceRepo.UpdateDeviceHeartbeat(ctx, device.ID, now, input.ContentHash); err != nil {
			return fmt.Errorf("failed to update device heartbeat: %w", err)
		}

		return nil
	})
}

func (s *fleetService) findDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by ID: %w", err)
	}

	return device, nil
}
