package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketModel is the GORM-specific struct for the 'support_tickets' table.
type SupportTicketModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	TicketType  string     `gorm:"type:varchar(20);not null"`
	Subject     string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'open'"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'medium'"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	Resolution  string     `gorm:"type:text"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}
