// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user owns at most one
// ClientProfile and/or one DriverProfile; the Role decides which one
// the application surfaces.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         Role
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApprovalStatus is the shared three-state review outcome used for
// creatives, vehicles, driver documents and KYC.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// ClientProfile holds data specific to the advertiser role.
// WalletBalance and TotalSpent are integer minor units (cents).
type ClientProfile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CompanyName    string
	CompanyVATID   string
	CompanyCountry string
	ContactPerson  string
	WalletBalance  int64
	TotalSpent     int64
	KYCStatus      ApprovalStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DriverProfile holds data specific to the driver role.
type DriverProfile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	LicenseNumber      string
	LicenseExpiry      *time.Time
	DocumentStatus     ApprovalStatus
	DocumentReviewedAt *time.Time
	DocumentReviewedBy *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
