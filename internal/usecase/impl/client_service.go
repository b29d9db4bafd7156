package impl

import (
	"context"
	"errors"
	"fmt"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
)

type clientService struct {
	profileRepo repository.ProfileRepository
	billingRepo repository.BillingRepository
	zoneRepo    repository.ZoneRepository
}

// NewClientService creates a new client service instance
func NewClientService(
	profileRepo repository.ProfileRepository,
	billingRepo repository.BillingRepository,
	zoneRepo repository.ZoneRepository,
) usecase.ClientUsecase {
	return &clientService{
		profileRepo: profileRepo,
		billingRepo: billingRepo,
		zoneRepo:    zoneRepo,
	}
}

// GetProfile returns the caller's client profile. Unlike the other
// reads, a missing profile surfaces as a 404 so the frontend can route
// the user into onboarding.
func (s *clientService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrClientProfileNotFound
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	return profile, nil
}

// GetWalletBalance returns the caller's wallet snapshot. A missing
// profile yields a zero balance.
func (s *clientService) GetWalletBalance(ctx context.Context, userID uuid.UUID) (*usecase.WalletBalance, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.WalletBalance{}, nil
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	return &usecase.WalletBalance{
		Balance:    profile.WalletBalance,
		TotalSpent: profile.TotalSpent,
	}, nil
}

// GetWalletLedger returns the caller's wallet movements. A missing
// profile yields an empty list.
func (s *clientService) GetWalletLedger(ctx context.Context, userID uuid.UUID) ([]*entity.WalletLedgerEntry, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []*entity.WalletLedgerEntry{}, nil
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	entries, err := s.billingRepo.ListLedgerByClient(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet ledger: %w", err)
	}

	return entries, nil
}

// GetInvoices returns the caller's invoices. A missing profile yields
// an empty list.
func (s *clientService) GetInvoices(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []*entity.Invoice{}, nil
		}

		return nil, fmt.Errorf("failed to find client profile: %w", err)
	}

	invoices, err := s.billingRepo.ListInvoicesByClient(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

// GetZones returns all geographic pricing zones.
func (s *clientService) GetZones(ctx context.Context) ([]*entity.Zone, error) {
	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	return zones, nil
}
