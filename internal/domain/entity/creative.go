package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreativeType distinguishes how an ad image was produced.
type CreativeType string

const (
	CreativeTemplate    CreativeType = "template"
	CreativeCustom      CreativeType = "custom"
	CreativeAIGenerated CreativeType = "ai_generated"
)

// Creative is an uploaded ad image belonging to one campaign. Two
// independent approval gates exist: the owning client's self-approval
// (ClientApprovedAt, idempotent overwrite) and the admin compliance
// review (ApprovalStatus plus ComplianceApprovedAt/By).
type Creative struct {
	ID                   uuid.UUID
	CampaignID           uuid.UUID
	AssetURL             string
	AssetKey             string
	CreativeType         CreativeType
	TemplateID           string
	ApprovalStatus       ApprovalStatus
	ClientApprovedAt     *time.Time
	ComplianceApprovedAt *time.Time
	ComplianceApprovedBy *uuid.UUID
	RejectionReason      *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CreativeReview is the outcome of one admin compliance decision,
// applied atomically to the creative and its queue entry.
type CreativeReview struct {
	Approved        bool
	ReviewedBy      uuid.UUID
	ReviewedAt      time.Time
	RejectionReason *string
}
