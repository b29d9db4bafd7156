package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketType categorizes a support ticket.
type TicketType string

const (
	TicketDriverIssue   TicketType = "driver_issue"
	TicketCampaignIssue TicketType = "campaign_issue"
	TicketPaymentIssue  TicketType = "payment_issue"
	TicketDeviceIssue   TicketType = "device_issue"
	TicketOther         TicketType = "other"
)

// TicketStatus is the triage state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketPriority ranks a support ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// SupportTicket is a user-filed issue. Only read/triage paths are in
// scope for this service.
type SupportTicket struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TicketType  TicketType
	Subject     string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	AssignedTo  *uuid.UUID
	Resolution  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
