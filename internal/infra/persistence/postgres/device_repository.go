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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByHardwareID retrieves a device by its hardware serial.
func (repo *deviceRepository) FindDeviceByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("hardware_id = ?", hardwareID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by hardware ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByVehicle retrieves the device mounted on a vehicle.
func (repo *deviceRepository) FindDeviceByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by vehicle")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListDevices retrieves a page of devices ordered by creation time.
func (repo *deviceRepository) ListDevices(ctx context.Context, limit, offset int) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// CountDevices returns the total number of registered devices.
func (repo *deviceRepository) CountDevices(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

// UpdateDeviceHeartbeat stamps the last contact fields on a device.
func (repo *deviceRepository) UpdateDeviceHeartbeat(ctx context.Context, id uuid.UUID, heartbeatAt time.Time, contentHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_heartbeat_at": heartbeatAt,
			"last_content_hash": contentHash,
			"status":            string(entity.DeviceActive),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device heartbeat")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// AppendTelemetry persists one telemetry sample.
func (repo *deviceRepository) AppendTelemetry(ctx context.Context, sample *entity.DeviceTelemetry) error {
	sampleM := fromTelemetryDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append telemetry")
	}

	// Update the entity with generated values
	sample.ID = sampleM.ID
	sample.CreatedAt = sampleM.CreatedAt

	return nil
}

// LatestTelemetryByDevice retrieves the most recent telemetry sample of
// a device, or nil when the device has never reported.
func (repo *deviceRepository) LatestTelemetryByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceTelemetry, error) {
	var sampleM model.DeviceTelemetryModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("heartbeat_at DESC").
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest telemetry by device")
	}

	return toTelemetryDomain(&sampleM), nil
}

// LatestTelemetryPerDevice retrieves the most recent sample of every
// device that has ever reported, keyed by device ID. DISTINCT ON keeps
// this a single indexed scan instead of one query per device.
func (repo *deviceRepository) LatestTelemetryPerDevice(ctx context.Context) (map[uuid.UUID]*entity.DeviceTelemetry, error) {
	var sampleModels []*model.DeviceTelemetryModel

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (device_id) *
			FROM device_telemetry
			ORDER BY device_id, heartbeat_at DESC`).
		Scan(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest telemetry per device")
	}

	samples := make(map[uuid.UUID]*entity.DeviceTelemetry, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples[sampleM.DeviceID] = toTelemetryDomain(sampleM)
	}

	return samples, nil
}

// ListTelemetryByDevice retrieves the most recent samples of a device,
// newest first, capped at limit.
func (repo *deviceRepository) ListTelemetryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceTelemetry, error) {
	var sampleModels []*model.DeviceTelemetryModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("heartbeat_at DESC").
		Limit(limit).
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list telemetry by device")
	}

	samples := make([]*entity.DeviceTelemetry, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toTelemetryDomain(sampleM))
	}

	return samples, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:              data.ID,
		VehicleID:       data.VehicleID,
		HardwareID:      data.HardwareID,
		SecretHash:      data.SecretHash,
		Model:           data.Model,
		Resolution:      data.Resolution,
		ColorMode:       data.ColorMode,
		Status:          entity.DeviceStatus(data.Status),
		LastHeartbeatAt: data.LastHeartbeatAt,
		LastContentHash: data.LastContentHash,
		CurrentImageURL: data.CurrentImageURL,
		FirmwareVersion: data.FirmwareVersion,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toTelemetryDomain converts a GORM DeviceTelemetryModel to a domain entity.
func toTelemetryDomain(data *model.DeviceTelemetryModel) *entity.DeviceTelemetry {
	if data == nil {
		return nil
	}

	return &entity.DeviceTelemetry{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		HeartbeatAt:    data.HeartbeatAt,
		ContentHash:    data.ContentHash,
		Uptime:         data.Uptime,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		ErrorCode:      data.ErrorCode,
		CreatedAt:      data.CreatedAt,
	}
}

// fromTelemetryDomain converts a domain entity to a GORM DeviceTelemetryModel.
func fromTelemetryDomain(data *entity.DeviceTelemetry) *model.DeviceTelemetryModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTelemetryModel{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		HeartbeatAt:    data.HeartbeatAt,
		ContentHash:    data.ContentHash,
		Uptime:         data.Uptime,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		ErrorCode:      data.ErrorCode,
		CreatedAt:      data.CreatedAt,
	}
}
