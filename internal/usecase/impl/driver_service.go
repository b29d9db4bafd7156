package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
)

type driverService struct {
	profileRepo repository.ProfileRepository
	vehicleRepo repository.VehicleRepository
	deviceRepo  repository.DeviceRepository
	billingRepo repository.BillingRepository
	ticketRepo  repository.TicketRepository
}

// NewDriverService creates a new driver service instance
func NewDriverService(
	profileRepo repository.ProfileRepository,
	vehicleRepo repository.VehicleRepository,
	deviceRepo repository.DeviceRepository,
	billingRepo repository.BillingRepository,
	ticketRepo repository.TicketRepository,
) usecase.DriverUsecase {
	return &driverService{
		profileRepo: profileRepo,
		vehicleRepo: vehicleRepo,
		deviceRepo:  deviceRepo,
		billingRepo: billingRepo,
		ticketRepo:  ticketRepo,
	}
}

// GetProfile returns the caller's driver profile.
func (s *driverService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error) {
	profile, err := s.profileRepo.FindDriverProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrDriverProfileNotFound
		}

		return nil, fmt.Errorf("failed to find driver profile: %w", err)
	}

	return profile, nil
}

// GetVehicles returns the caller's vehicles with device summaries. A
// missing driver profile yields an empty list.
func (s *driverService) GetVehicles(ctx context.Context, userID uuid.UUID) ([]*usecase.VehicleWithDevice, error) {
	profile, err := s.profileRepo.FindDriverProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []*usecase.VehicleWithDevice{}, nil
		}

		return nil, fmt.Errorf("failed to find driver profile: %w", err)
	}

	vehicles, err := s.vehicleRepo.FindVehiclesByDriver(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by driver: %w", err)
	}

	now := time.Now()
	result := make([]*usecase.VehicleWithDevice, 0, len(vehicles))
	for _, vehicle := range vehicles {
		item := &usecase.VehicleWithDevice{Vehicle: vehicle}

		device, err := s.deviceRepo.FindDeviceByVehicle(ctx, vehicle.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrDeviceNotFound) {
				return nil, fmt.Errorf("failed to find device by vehicle: %w", err)
			}
		} else {
			latest, err := s.deviceRepo.LatestTelemetryByDevice(ctx, device.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to find latest telemetry: %w", err)
			}

			item.Device = &usecase.DeviceSummary{
				Device: device,
				Latest: latest,
				Online: latest.OnlineAt(now),
			}
		}

		result = append(result, item)
	}

	return result, nil
}

// GetEarnings returns the caller's payout history and total. A missing
// driver profile yields an empty result.
func (s *driverService) GetEarnings(ctx context.Context, userID uuid.UUID) (*usecase.DriverEarnings, error) {
	profile, err := s.profileRepo.FindDriverProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.DriverEarnings{Payouts: []*entity.Payout{}}, nil
		}

		return nil, fmt.Errorf("failed to find driver profile: %w", err)
	}

	payouts, err := s.billingRepo.ListPayoutsByDriver(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	var total int64
	for _, payout := range payouts {
		if payout.Status == entity.PayoutPaid || payout.Status == entity.PayoutApproved {
			total += payout.EarningAmount
		}
	}

	return &usecase.DriverEarnings{
		Payouts:     payouts,
		TotalEarned: total,
	}, nil
}

// GetTickets returns the caller's support tickets.
func (s *driverService) GetTickets(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListTicketsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by user: %w", err)
	}

	return tickets, nil
}
