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

// DriverHandlerParams holds dependencies for DriverHandler, injected by Fx.
type DriverHandlerParams struct {
	fx.In

	DriverUC usecase.DriverUsecase
	Logger   *slog.Logger
}

// DriverHandler holds dependencies for driver-facing handlers
type DriverHandler struct {
	driverUC usecase.DriverUsecase
	logger   *slog.Logger
}

// NewDriverHandler is the constructor for DriverHandler
func NewDriverHandler(params DriverHandlerParams) *DriverHandler {
	return &DriverHandler{
		driverUC: params.DriverUC,
		logger:   params.Logger,
	}
}

// GetProfile returns the caller's driver profile.
func (h *DriverHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.driverUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetVehicles returns the caller's vehicles with device summaries.
func (h *DriverHandler) GetVehicles(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vehicles, err := h.driverUC.GetVehicles(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicles)
}

// GetEarnings returns the caller's payout history.
func (h *DriverHandler) GetEarnings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	earnings, err := h.driverUC.GetEarnings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, earnings)
}

// GetTickets returns the caller's support tickets.
func (h *DriverHandler) GetTickets(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tickets, err := h.driverUC.GetTickets(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tickets)
}
