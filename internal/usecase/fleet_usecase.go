package usecase

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// FleetOverview aggregates fleet health counters for the admin
// dashboard.
type FleetOverview struct {
	TotalDevices      int64 `json:"total_devices"`
	OnlineDevices     int64 `json:"online_devices"`
	OfflineDevices    int64 `json:"offline_devices"`
	LowBatteryDevices int64 `json:"low_battery_devices"`
	ActiveAllocations int64 `json:"active_allocations"`
}

// DeviceListInput filters and pages the fleet device list. Status
// filters on the derived online/offline state, not the stored one;
// "all" disables the filter.
type DeviceListInput struct {
	Status *string `json:"status" validate:"omitempty,oneof=online offline all"`
	Limit  int     `json:"limit" validate:"min=0,max=200"`
	Offset int     `json:"offset" validate:"min=0"`
}

// DeviceWithStatus bundles a device with its latest telemetry and the
// derived online flag.
type DeviceWithStatus struct {
	Device *entity.Device          `json:"device"`
	Latest *entity.DeviceTelemetry `json:"latest_telemetry,omitempty"`
	Online bool                    `json:"online"`
}

// DeviceList is one page of fleet devices. Total counts the whole
// fleet, not the filtered page.
type DeviceList struct {
	Devices []*DeviceWithStatus `json:"devices"`
	Total   int64               `json:"total"`
}

// DeviceDetail is the full admin view of one device: the unit itself,
// the vehicle and driver it is mounted on, its latest telemetry, and
// the campaign currently allocated to it.
type DeviceDetail struct {
	Device           *entity.Device             `json:"device"`
	Vehicle          *entity.Vehicle            `json:"vehicle,omitempty"`
	Driver           *entity.DriverProfile      `json:"driver,omitempty"`
	Latest           *entity.DeviceTelemetry    `json:"latest_telemetry,omitempty"`
	Online           bool                       `json:"online"`
	ActiveAllocation *entity.CampaignAllocation `json:"active_allocation,omitempty"`
	Campaign         *entity.Campaign           `json:"campaign,omitempty"`
}

// HeartbeatInput is one telemetry report from a device. Devices
// authenticate with their hardware ID and pre-shared secret, carried
// in request headers rather than a user token.
type HeartbeatInput struct {
	HardwareID     string `json:"-"`
	Secret         string `json:"-"`
	ContentHash    string `json:"content_hash"`
	Uptime         int    `json:"uptime" validate:"min=0"`
	BatteryLevel   int    `json:"battery_level" validate:"min=0,max=100"`
	SignalStrength int    `json:"signal_strength"`
	ErrorCode      string `json:"error_code"`
}

// FleetUsecase defines the fleet monitoring and allocation use cases.
type FleetUsecase interface {
	// GetFleetOverview returns aggregate fleet health counters.
	GetFleetOverview(ctx context.Context) (*FleetOverview, error)

	// GetDevices returns one page of devices with derived status.
	GetDevices(ctx context.Context, input *DeviceListInput) (*DeviceList, error)

	// GetDeviceDetail returns one device with its vehicle, driver,
	// telemetry, and active allocation.
	GetDeviceDetail(ctx context.Context, deviceID uuid.UUID) (*DeviceDetail, error)

	// GetDeviceTelemetry returns the most recent telemetry samples of a
	// device, newest first.
	GetDeviceTelemetry(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceTelemetry, error)

	// AllocateCampaign puts a campaign on a device, completing any
	// allocation the device already carries.
	AllocateCampaign(ctx context.Context, adminID, campaignID, deviceID uuid.UUID) (*entity.CampaignAllocation, error)

	// DeallocateCampaign completes the device's active allocation.
	DeallocateCampaign(ctx context.Context, adminID, deviceID uuid.UUID) error

	// RecordHeartbeat authenticates a device and appends one telemetry
	// sample.
	RecordHeartbeat(ctx context.Context, input *HeartbeatInput) error
}
