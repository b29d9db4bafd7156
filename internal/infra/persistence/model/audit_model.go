package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the GORM-specific struct for the 'audit_log' table.
// Rows are inserted once and never touched again.
type AuditLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID    *uuid.UUID `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(64);not null;index"`
	EntityType string     `gorm:"type:varchar(32);not null"`
	EntityID   *uuid.UUID `gorm:"type:uuid;index"`
	Changes    []byte     `gorm:"type:jsonb"`
	Reason     *string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_log"
}
