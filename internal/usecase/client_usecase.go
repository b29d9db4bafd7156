package usecase

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletBalance is the client's wallet snapshot in integer minor units.
type WalletBalance struct {
	Balance    int64 `json:"balance"`
	TotalSpent int64 `json:"total_spent"`
}

// ClientUsecase defines the advertiser-facing use cases outside of
// campaign management.
type ClientUsecase interface {
	// GetProfile returns the caller's client profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error)

	// GetWalletBalance returns the caller's wallet snapshot. A missing
	// profile yields a zero balance, not an error.
	GetWalletBalance(ctx context.Context, userID uuid.UUID) (*WalletBalance, error)

	// GetWalletLedger returns the caller's wallet movements, newest
	// first. A missing profile yields an empty list.
	GetWalletLedger(ctx context.Context, userID uuid.UUID) ([]*entity.WalletLedgerEntry, error)

	// GetInvoices returns the caller's invoices, newest first. A
	// missing profile yields an empty list.
	GetInvoices(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)

	// GetZones returns all geographic pricing zones.
	GetZones(ctx context.Context) ([]*entity.Zone, error)
}
