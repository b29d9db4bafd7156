package usecase

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceSummary is the driver-facing view of the display mounted on a
// vehicle.
type DeviceSummary struct {
	Device *entity.Device          `json:"device"`
	Latest *entity.DeviceTelemetry `json:"latest_telemetry,omitempty"`
	Online bool                    `json:"online"`
}

// VehicleWithDevice bundles a vehicle with its device, when one is
// mounted.
type VehicleWithDevice struct {
	Vehicle *entity.Vehicle `json:"vehicle"`
	Device  *DeviceSummary  `json:"device,omitempty"`
}

// DriverEarnings summarizes a driver's payouts.
type DriverEarnings struct {
	Payouts     []*entity.Payout `json:"payouts"`
	TotalEarned int64            `json:"total_earned"`
}

// DriverUsecase defines the driver-facing use cases.
type DriverUsecase interface {
	// GetProfile returns the caller's driver profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error)

	// GetVehicles returns the caller's vehicles with device summaries.
	// A missing driver profile yields an empty list.
	GetVehicles(ctx context.Context, userID uuid.UUID) ([]*VehicleWithDevice, error)

	// GetEarnings returns the caller's payout history and total. A
	// missing driver profile yields an empty result.
	GetEarnings(ctx context.Context, userID uuid.UUID) (*DriverEarnings, error)

	// GetTickets returns the caller's support tickets, newest first.
	GetTickets(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)
}
