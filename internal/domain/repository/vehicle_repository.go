package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVehicleNotFound is returned when a vehicle does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines persistence operations for driver vehicles.
type VehicleRepository interface {
	// FindVehicleByID retrieves a single vehicle by ID.
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindVehiclesByDriver retrieves all vehicles of a driver profile,
	// newest first.
	FindVehiclesByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error)
}
