package postgres

import (
	"testing"
	"time"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceReviewUpdates_Approved(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()

	updates := complianceReviewUpdates(entity.CreativeReview{
		Approved:   true,
		ReviewedBy: adminID,
		ReviewedAt: now,
	})

	assert.Equal(t, string(entity.ApprovalApproved), updates["approval_status"])
	assert.Equal(t, now, updates["compliance_approved_at"])
	assert.Equal(t, adminID, updates["compliance_approved_by"])
	assert.NotContains(t, updates, "rejection_reason")
}

func TestComplianceReviewUpdates_RejectionClearsApproval(t *testing.T) {
	reason := "logo violates brand guidelines"

	updates := complianceReviewUpdates(entity.CreativeReview{
		Approved:        false,
		ReviewedBy:      uuid.New(),
		ReviewedAt:      time.Now(),
		RejectionReason: &reason,
	})

	assert.Equal(t, string(entity.ApprovalRejected), updates["approval_status"])
	assert.Equal(t, &reason, updates["rejection_reason"])

	// A rejected creative must not carry reviewer attribution: both
	// compliance columns are written back to NULL, even if the row was
	// approved before.
	require.Contains(t, updates, "compliance_approved_at")
	require.Contains(t, updates, "compliance_approved_by")
	assert.Nil(t, updates["compliance_approved_at"])
	assert.Nil(t, updates["compliance_approved_by"])
}
