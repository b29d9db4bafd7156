package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// One e-paper display mounted on a vehicle.
type DeviceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VehicleID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	HardwareID      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	SecretHash      string    `gorm:"type:varchar(255);not null"`
	Model           string    `gorm:"type:varchar(64)"`
	Resolution      string    `gorm:"type:varchar(20)"`
	ColorMode       string    `gorm:"type:varchar(20)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'provisioning'"`
	LastHeartbeatAt *time.Time
	LastContentHash string `gorm:"type:varchar(64)"`
	CurrentImageURL string `gorm:"type:text"`
	FirmwareVersion string `gorm:"type:varchar(32)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceTelemetryModel is the GORM-specific struct for the
// 'device_telemetry' table. Append-only heartbeat samples.
type DeviceTelemetryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index:idx_device_telemetry_device_time,priority:1"`
	HeartbeatAt    time.Time `gorm:"not null;index:idx_device_telemetry_device_time,priority:2,sort:desc"`
	ContentHash    string    `gorm:"type:varchar(64)"`
	Uptime         int
	BatteryLevel   int
	SignalStrength int
	ErrorCode      string `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTelemetryModel) TableName() string {
	return "device_telemetry"
}
