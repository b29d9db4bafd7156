package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no client or driver profile
// exists for the given user. Callers decide whether this degrades to
// an empty result or surfaces as a 404.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations for the role
// profiles that extend a base user.
type ProfileRepository interface {
	// FindClientProfileByUserID retrieves the client profile owned by the given user.
	FindClientProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.ClientProfile, error)

	// FindClientProfileByID retrieves a client profile by its own ID.
	FindClientProfileByID(ctx context.Context, id uuid.UUID) (*entity.ClientProfile, error)

	// FindDriverProfileByUserID retrieves the driver profile owned by the given user.
	FindDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.DriverProfile, error)

	// FindDriverProfileByID retrieves a driver profile by its own ID.
	FindDriverProfileByID(ctx context.Context, id uuid.UUID) (*entity.DriverProfile, error)
}
