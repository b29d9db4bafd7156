package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a driver-owned car fitted (or about to be fitted) with an
// e-paper advertising device. License plates are unique platform-wide.
type Vehicle struct {
	ID             uuid.UUID
	DriverID       uuid.UUID
	LicensePlate   string
	Make           string
	Model          string
	Year           int
	Color          string
	ApprovalStatus ApprovalStatus
	ApprovedAt     *time.Time
	ApprovedBy     *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
