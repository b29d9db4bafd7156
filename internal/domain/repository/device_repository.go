package repository

import (
	"context"
	"errors"
	"time"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device does not exist.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines persistence operations for e-paper display
// devices and the telemetry they report.
type DeviceRepository interface {
	// FindDeviceByID retrieves a single device by ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceByHardwareID retrieves a device by its hardware serial.
	FindDeviceByHardwareID(ctx context.Context, hardwareID string) (*entity.Device, error)

	// FindDeviceByVehicle retrieves the device mounted on a vehicle.
	FindDeviceByVehicle(ctx context.Context, vehicleID uuid.UUID) (*entity.Device, error)

	// ListDevices retrieves a page of devices ordered by creation time.
	ListDevices(ctx context.Context, limit, offset int) ([]*entity.Device, error)

	// CountDevices returns the total number of registered devices.
	CountDevices(ctx context.Context) (int64, error)

	// UpdateDeviceHeartbeat stamps the last contact fields on a device.
	UpdateDeviceHeartbeat(ctx context.Context, id uuid.UUID, heartbeatAt time.Time, contentHash string) error

	// AppendTelemetry persists one telemetry sample.
	AppendTelemetry(ctx context.Context, sample *entity.DeviceTelemetry) error

	// LatestTelemetryByDevice retrieves the most recent telemetry sample
	// of a device, or nil when the device has never reported.
	LatestTelemetryByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceTelemetry, error)

	// LatestTelemetryPerDevice retrieves the most recent sample of every
	// device that has ever reported, keyed by device ID.
	LatestTelemetryPerDevice(ctx context.Context) (map[uuid.UUID]*entity.DeviceTelemetry, error)

	// ListTelemetryByDevice retrieves the most recent samples of a
	// device, newest first, capped at limit.
	ListTelemetryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceTelemetry, error)
}
