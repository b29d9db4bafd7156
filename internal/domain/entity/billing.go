package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags a wallet ledger row.
type TransactionType string

const (
	TransactionTopup      TransactionType = "topup"
	TransactionSpend      TransactionType = "spend"
	TransactionRefund     TransactionType = "refund"
	TransactionAdjustment TransactionType = "adjustment"
)

// WalletLedgerEntry is an append-only wallet movement record. No
// exposed operation writes to the ledger yet; only read paths exist.
type WalletLedgerEntry struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	TransactionType TransactionType
	Amount          int64
	BalanceBefore   int64
	BalanceAfter    int64
	Reference       string
	Description     string
	CreatedAt       time.Time
}

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing record for a client. Generation logic lives
// outside this service; only read paths are exposed.
type Invoice struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	InvoiceNumber string
	CampaignID    *uuid.UUID
	InvoiceDate   time.Time
	DueDate       time.Time
	Subtotal      int64
	VATAmount     int64
	Total         int64
	VATRate       float64
	Status        InvoiceStatus
	PDFURL        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PayoutStatus is the settlement state of a driver payout.
type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutPaid     PayoutStatus = "paid"
	PayoutDisputed PayoutStatus = "disputed"
)

// Payout is a driver earnings record tied to one campaign allocation.
type Payout struct {
	ID            uuid.UUID
	DriverID      uuid.UUID
	AllocationID  uuid.UUID
	EarningAmount int64
	Formula       string
	ActiveDays    int
	AverageUptime float64
	Status        PayoutStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
