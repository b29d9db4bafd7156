package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignAllocationModel is the GORM-specific struct for the
// 'campaign_allocations' table. Links a campaign to the device that
// displays it.
type CampaignAllocationModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID          uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID            uuid.UUID `gorm:"type:uuid;not null;index:idx_allocations_device_status,priority:1"`
	AllocationStartDate time.Time `gorm:"not null"`
	AllocationEndDate   time.Time `gorm:"not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:'scheduled';index:idx_allocations_device_status,priority:2"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignAllocationModel) TableName() string {
	return "campaign_allocations"
}
