package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DeviceOnlineWindow is the telemetry freshness window: a device is
	// online iff its most recent heartbeat is younger than this.
	DeviceOnlineWindow = 5 * time.Minute

	// LowBatteryThreshold is the battery percentage below which a
	// device counts as low-battery in the fleet overview.
	LowBatteryThreshold = 20
)

// DeviceStatus is the provisioning lifecycle state stored on the
// device row. Online/offline is derived from telemetry freshness, not
// from this column.
type DeviceStatus string

const (
	DeviceProvisioning DeviceStatus = "provisioning"
	DeviceActive       DeviceStatus = "active"
	DeviceOffline      DeviceStatus = "offline"
	DeviceError        DeviceStatus = "error"
)

// IsValid checks if the DeviceStatus is a valid value.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceProvisioning, DeviceActive, DeviceOffline, DeviceError:
		return true
	default:
		return false
	}
}

// Device is an e-paper advertising unit mounted in exactly one
// vehicle. HardwareID is the identifier the unit presents on the wire;
// SecretHash is a bcrypt hash of its provisioning secret.
type Device struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	HardwareID      string
	SecretHash      string
	Model           string
	Resolution      string
	ColorMode       string
	Status          DeviceStatus
	LastHeartbeatAt *time.Time
	LastContentHash string
	CurrentImageURL string
	FirmwareVersion string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeviceTelemetry is one append-only heartbeat report. Rows are never
// updated or deleted; "current telemetry" is the newest row by
// CreatedAt.
type DeviceTelemetry struct {
	ID             uuid.UUID
	DeviceID       uuid.UUID
	HeartbeatAt    time.Time
	ContentHash    string
	Uptime         int
	BatteryLevel   int
	SignalStrength int
	ErrorCode      string
	CreatedAt      time.Time
}

// OnlineAt reports whether a device with this latest telemetry row is
// considered online at the given instant. A nil receiver (no telemetry
// at all) is offline.
func (t *DeviceTelemetry) OnlineAt(now time.Time) bool {
	if t == nil {
		return false
	}

	return now.Sub(t.HeartbeatAt) < DeviceOnlineWindow
}
