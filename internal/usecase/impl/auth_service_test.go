package impl

import (
	"context"
	"testing"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	mockRepo "vehiclee/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Me_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAuthService(userRepo)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Email: "client@example.com",
		Name:  "Acme Advertising",
		Role:  entity.RoleClient,
	}

	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(user, nil)

	got, err := service.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAuthService(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	got, err := service.Me(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
