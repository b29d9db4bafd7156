package model

import (
	"time"

	"github.com/google/uuid"
)

// CreativeModel is the GORM-specific struct for the 'creatives' table.
type CreativeModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID           uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetURL             string    `gorm:"type:text;not null"`
	AssetKey             string    `gorm:"type:varchar(255)"`
	CreativeType         string    `gorm:"type:varchar(20);not null"`
	TemplateID           string    `gorm:"type:varchar(64)"`
	ApprovalStatus       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ClientApprovedAt     *time.Time
	ComplianceApprovedAt *time.Time
	ComplianceApprovedBy *uuid.UUID `gorm:"type:uuid"`
	RejectionReason      *string    `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreativeModel) TableName() string {
	return "creatives"
}
