package handler

import (
	"log/slog"
	"net/http"

	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/response"
	"vehiclee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for session-related handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Me returns the authenticated user's identity, or null for anonymous
// callers.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Success(c, http.StatusOK, nil)
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Logout acknowledges a logout. Access tokens are stateless, so the
// client simply discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
