package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit action names. One per state-changing operation; the audit log
// is the system's only history mechanism.
const (
	AuditCampaignCreated           = "campaign_created"
	AuditCreativeUploaded          = "creative_uploaded"
	AuditCreativeClientApproved    = "creative_client_approved"
	AuditCreativeSubmitted         = "creative_submitted"
	AuditCreativeApprovedByAdmin   = "creative_approved_by_admin"
	AuditCreativeRejectedByAdmin   = "creative_rejected_by_admin"
	AuditCampaignApprovedByAdmin   = "campaign_approved_by_admin"
	AuditCampaignRejectedByAdmin   = "campaign_rejected_by_admin"
	AuditCampaignAllocatedToDevice = "campaign_allocated_to_device"
	AuditCampaignDeallocated       = "campaign_deallocated_from_device"
)

// AuditLogEntry is an immutable record of one state-changing action.
// Rows are appended and never updated or deleted.
type AuditLogEntry struct {
	ID         uuid.UUID
	ActorID    *uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Changes    map[string]any
	Reason     *string
	CreatedAt  time.Time
}
