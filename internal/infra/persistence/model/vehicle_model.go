package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DriverID       uuid.UUID `gorm:"type:uuid;not null;index"`
	LicensePlate   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Make           string    `gorm:"type:varchar(64)"`
	Model          string    `gorm:"type:varchar(64)"`
	Year           int
	Color          string `gorm:"type:varchar(32)"`
	ApprovalStatus string `gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedAt     *time.Time
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
