package repository

import (
	"context"
	"errors"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrZoneNotFound is returned when a zone does not exist.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneRepository defines read operations for geographic pricing zones.
type ZoneRepository interface {
	// ListZones retrieves every zone, grouped by city then name.
	ListZones(ctx context.Context) ([]*entity.Zone, error)

	// FindZoneByID retrieves a single zone by ID.
	FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error)
}
