package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletLedgerModel is the GORM-specific struct for the
// 'wallet_ledger' table. Append-only wallet movements.
type WalletLedgerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionType string    `gorm:"type:varchar(20);not null"`
	Amount          int64     `gorm:"not null"`
	BalanceBefore   int64     `gorm:"not null"`
	BalanceAfter    int64     `gorm:"not null"`
	Reference       string    `gorm:"type:varchar(255)"`
	Description     string    `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletLedgerModel) TableName() string {
	return "wallet_ledger"
}

// InvoiceModel is the GORM-specific struct for the 'invoices' table.
type InvoiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	InvoiceNumber string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	CampaignID    *uuid.UUID `gorm:"type:uuid"`
	InvoiceDate   time.Time  `gorm:"not null"`
	DueDate       time.Time  `gorm:"not null"`
	Subtotal      int64      `gorm:"not null"`
	VATAmount     int64      `gorm:"not null"`
	Total         int64      `gorm:"not null"`
	VATRate       float64    `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft'"`
	PDFURL        string     `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// PayoutModel is the GORM-specific struct for the 'payouts' table.
type PayoutModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DriverID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AllocationID  uuid.UUID `gorm:"type:uuid;not null"`
	EarningAmount int64     `gorm:"not null"`
	Formula       string    `gorm:"type:varchar(255)"`
	ActiveDays    int       `gorm:"not null;default:0"`
	AverageUptime float64   `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PayoutModel) TableName() string {
	return "payouts"
}
