package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/service"
	mockService "vehiclee/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mockService.MockTokenService) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/client/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), mockService.NewMockTokenService(t)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	m := NewAuthMiddleware(tokenSvc)

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Basic dXNlcjpwYXNz")
	m := NewAuthMiddleware(tokenSvc)

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer bad-token")
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, errors.New("token is expired"))

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	err := handler(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_SetsUserAndRole(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer good-token")
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Role: "client"}, nil)

	var gotUserID uuid.UUID
	var gotRole string
	handler := m.Authenticate(func(c echo.Context) error {
		gotUserID, _ = GetUserID(c)
		gotRole, _ = GetRole(c)
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "client", gotRole)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	m := NewAuthMiddleware(tokenSvc)

	handler := m.OptionalAuthenticate(func(c echo.Context) error {
		_, ok := GetUserID(c)
		assert.False(t, ok)
		return nil
	})

	require.NoError(t, handler(c))
}

func TestAuthMiddleware_OptionalAuthenticate_InvalidTokenPassesThrough(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer stale-token")
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateToken("stale-token").
		Return(nil, errors.New("token is expired"))

	handler := m.OptionalAuthenticate(func(c echo.Context) error {
		_, ok := GetUserID(c)
		assert.False(t, ok)
		return nil
	})

	require.NoError(t, handler(c))
}

func TestAuthMiddleware_OptionalAuthenticate_ValidToken(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "Bearer good-token")
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Role: "admin"}, nil)

	handler := m.OptionalAuthenticate(func(c echo.Context) error {
		gotUserID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotUserID)
		return nil
	})

	require.NoError(t, handler(c))
}

func TestAuthMiddleware_RequireRole_WrongRole(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	m := NewAuthMiddleware(tokenSvc)
	c.Set(contextKeyUserID, uuid.New())
	c.Set(contextKeyRole, "driver")

	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	err := handler(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "This action requires admin role", appErr.Message())
}

func TestAuthMiddleware_RequireRole_NoRoleOnContext(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	m := NewAuthMiddleware(tokenSvc)

	handler := m.RequireRole(entity.RoleClient)(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	err := handler(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "This action requires client role", appErr.Message())
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	c, tokenSvc := newAuthTestContext(t, "")
	m := NewAuthMiddleware(tokenSvc)
	c.Set(contextKeyUserID, uuid.New())
	c.Set(contextKeyRole, "admin")

	called := false
	handler := m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}
