package impl

import (
	"context"
	"errors"
	"fmt"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
)

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repository.UserRepository) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
	}
}

// Me returns the authenticated user's identity record.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}
