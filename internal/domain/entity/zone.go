package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Zone is a geographic pricing region within a city. The polygon is
// optional; campaigns may reference a zone to scope where their
// creatives run.
type Zone struct {
	ID              uuid.UUID
	City            string
	ZoneName        string
	Polygon         *geojson.Geometry
	PriceModifier   float64
	ExclusivityFlag bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
