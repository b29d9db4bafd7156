package repository

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// BillingRepository defines read operations for wallet ledgers,
// invoices and driver payouts. Writes happen in external billing jobs.
type BillingRepository interface {
	// ListPayoutsByDriver retrieves all payouts of a driver profile, newest first.
	ListPayoutsByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Payout, error)

	// ListInvoicesByClient retrieves all invoices of a client profile, newest first.
	ListInvoicesByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Invoice, error)

	// ListLedgerByClient retrieves the wallet ledger of a client profile, newest first.
	ListLedgerByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.WalletLedgerEntry, error)
}
