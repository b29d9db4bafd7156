package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceQueueModel is the GORM-specific struct for the
// 'compliance_queue' table. One row per pending or decided review.
type ComplianceQueueModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EntityType           string     `gorm:"type:varchar(20);not null;index:idx_compliance_entity,priority:1"`
	EntityID             uuid.UUID  `gorm:"type:uuid;not null;index:idx_compliance_entity,priority:2"`
	Status               string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy           *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt           *time.Time
	RejectionReason      *string `gorm:"type:text"`
	RestrictedCategories []byte  `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplianceQueueModel) TableName() string {
	return "compliance_queue"
}
