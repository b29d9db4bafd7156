package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewCampaignRepository returns a CampaignRepository instance bound to the current transaction.
	NewCampaignRepository() CampaignRepository

	// NewCreativeRepository returns a CreativeRepository instance bound to the current transaction.
	NewCreativeRepository() CreativeRepository

	// NewComplianceRepository returns a ComplianceRepository instance bound to the current transaction.
	NewComplianceRepository() ComplianceRepository

	// NewAllocationRepository returns an AllocationRepository instance bound to the current transaction.
	NewAllocationRepository() AllocationRepository

	// NewDeviceRepository returns a DeviceRepository instance bound to the current transaction.
	NewDeviceRepository() DeviceRepository

	// NewAuditLogRepository returns an AuditLogRepository instance bound to the current transaction.
	NewAuditLogRepository() AuditLogRepository
}
