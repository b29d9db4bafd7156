// Package usecase defines the application-layer interfaces and their
// input/output types. Delivery depends on these, never on the impls.
package usecase

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUsecase defines the interface for session-level use cases.
type AuthUsecase interface {
	// Me returns the authenticated user's identity record.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
