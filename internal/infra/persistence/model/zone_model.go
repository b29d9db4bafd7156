package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneModel is the GORM-specific struct for the 'zones' table.
// Polygon holds the zone boundary as GeoJSON.
type ZoneModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	City            string    `gorm:"type:varchar(128);not null;index"`
	ZoneName        string    `gorm:"type:varchar(128);not null"`
	Polygon         []byte    `gorm:"type:jsonb"`
	PriceModifier   float64   `gorm:"not null;default:1"`
	ExclusivityFlag bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}
