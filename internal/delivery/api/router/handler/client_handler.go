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

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler holds dependencies for advertiser-facing handlers
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// GetProfile returns the caller's client profile.
func (h *ClientHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.clientUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetWallet returns the caller's wallet balance.
func (h *ClientHandler) GetWallet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.clientUC.GetWalletBalance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance)
}

// GetWalletLedger returns the caller's wallet movements.
func (h *ClientHandler) GetWalletLedger(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.clientUC.GetWalletLedger(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// GetInvoices returns the caller's invoices.
func (h *ClientHandler) GetInvoices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invoices, err := h.clientUC.GetInvoices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices)
}

// GetZones returns all geographic pricing zones.
func (h *ClientHandler) GetZones(c echo.Context) error {
	zones, err := h.clientUC.GetZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}
