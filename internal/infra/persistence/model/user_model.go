package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Identity is provisioned by the upstream auth gateway; this service
// reads users and stamps their last sign-in.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ClientProfileModel is the GORM-specific struct for the 'client_profiles' table.
type ClientProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName    string    `gorm:"type:varchar(255);not null"`
	CompanyVATID   string    `gorm:"type:varchar(64)"`
	CompanyCountry string    `gorm:"type:varchar(2)"`
	ContactPerson  string    `gorm:"type:varchar(255)"`
	WalletBalance  int64     `gorm:"not null;default:0"`
	TotalSpent     int64     `gorm:"not null;default:0"`
	KYCStatus      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientProfileModel) TableName() string {
	return "client_profiles"
}

// DriverProfileModel is the GORM-specific struct for the 'driver_profiles' table.
type DriverProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LicenseNumber      string    `gorm:"type:varchar(64)"`
	LicenseExpiry      *time.Time
	DocumentStatus     string `gorm:"type:varchar(20);not null;default:'pending'"`
	DocumentReviewedAt *time.Time
	DocumentReviewedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverProfileModel) TableName() string {
	return "driver_profiles"
}
