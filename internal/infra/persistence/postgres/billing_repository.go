package postgres

import (
	"context"

	"vehiclee/internal/domain/entity"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// billingRepository implements the repository.BillingRepository interface.
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingRepository {
	return &billingRepository{
		db: db,
	}
}

// ListPayoutsByDriver retrieves all payouts of a driver profile.
func (repo *billingRepository) ListPayoutsByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Payout, error) {
	var payoutModels []*model.PayoutModel

	if err := repo.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Find(&payoutModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payouts by driver")
	}

	payouts := make([]*entity.Payout, 0, len(payoutModels))
	for _, payoutM := range payoutModels {
		payouts = append(payouts, toPayoutDomain(payoutM))
	}

	return payouts, nil
}

// ListInvoicesByClient retrieves all invoices of a client profile.
func (repo *billingRepository) ListInvoicesByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Invoice, error) {
	var invoiceModels []*model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("invoice_date DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices by client")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, nil
}

// ListLedgerByClient retrieves the wallet ledger of a client profile.
func (repo *billingRepository) ListLedgerByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.WalletLedgerEntry, error) {
	var ledgerModels []*model.WalletLedgerModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&ledgerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet ledger by client")
	}

	entries := make([]*entity.WalletLedgerEntry, 0, len(ledgerModels))
	for _, ledgerM := range ledgerModels {
		entries = append(entries, toLedgerDomain(ledgerM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toPayoutDomain converts a GORM PayoutModel to a domain Payout entity.
func toPayoutDomain(data *model.PayoutModel) *entity.Payout {
	if data == nil {
		return nil
	}

	return &entity.Payout{
		ID:            data.ID,
		DriverID:      data.DriverID,
		AllocationID:  data.AllocationID,
		EarningAmount: data.EarningAmount,
		Formula:       data.Formula,
		ActiveDays:    data.ActiveDays,
		AverageUptime: data.AverageUptime,
		Status:        entity.PayoutStatus(data.Status),
		PaidAt:        data.PaidAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:            data.ID,
		ClientID:      data.ClientID,
		InvoiceNumber: data.InvoiceNumber,
		CampaignID:    data.CampaignID,
		InvoiceDate:   data.InvoiceDate,
		DueDate:       data.DueDate,
		Subtotal:      data.Subtotal,
		VATAmount:     data.VATAmount,
		Total:         data.Total,
		VATRate:       data.VATRate,
		Status:        entity.InvoiceStatus(data.Status),
		PDFURL:        data.PDFURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toLedgerDomain converts a GORM WalletLedgerModel to a domain entity.
func toLedgerDomain(data *model.WalletLedgerModel) *entity.WalletLedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.WalletLedgerEntry{
		ID:              data.ID,
		ClientID:        data.ClientID,
		TransactionType: entity.TransactionType(data.TransactionType),
		Amount:          data.Amount,
		BalanceBefore:   data.BalanceBefore,
		BalanceAfter:    data.BalanceAfter,
		Reference:       data.Reference,
		Description:     data.Description,
		CreatedAt:       data.CreatedAt,
	}
}
