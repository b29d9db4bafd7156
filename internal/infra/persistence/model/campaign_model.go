package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
type CampaignModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	CampaignName         string     `gorm:"type:varchar(255);not null"`
	Description          string     `gorm:"type:text"`
	City                 string     `gorm:"type:varchar(128);not null"`
	ZoneID               *uuid.UUID `gorm:"type:uuid"`
	StartDate            time.Time  `gorm:"not null"`
	EndDate              time.Time  `gorm:"not null"`
	NumberOfCars         int        `gorm:"not null"`
	DailyBudget          int64      `gorm:"not null"`
	TotalBudget          int64      `gorm:"not null"`
	Status               string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	ComplianceApprovedAt *time.Time
	ComplianceApprovedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
