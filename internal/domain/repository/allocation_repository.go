package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAllocationNotFound is returned when no matching allocation exists.
var ErrAllocationNotFound = errors.New("allocation not found")

// AllocationRepository defines persistence operations for
// campaign-to-device allocations.
type AllocationRepository interface {
	// CreateAllocation persists a new allocation.
	CreateAllocation(ctx context.Context, allocation *entity.CampaignAllocation) error

	// FindActiveByDevice retrieves the active allocation of a device.
	// Returns ErrAllocationNotFound when the device has none.
	FindActiveByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.CampaignAllocation, error)

	// CompleteActiveByDevice marks every active allocation of a device
	// as completed and returns how many rows changed.
	CompleteActiveByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// CompleteAllocation marks a single allocation as completed.
	CompleteAllocation(ctx context.Context, id uuid.UUID) error

	// CountActive returns the number of active allocations.
	CountActive(ctx context.Context) (int64, error)
}
