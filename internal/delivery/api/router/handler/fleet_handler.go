package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/response"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FleetHandlerParams holds dependencies for FleetHandler, injected by Fx.
type FleetHandlerParams struct {
	fx.In

	FleetUC usecase.FleetUsecase
	Logger  *slog.Logger
}

// FleetHandler holds dependencies for fleet monitoring and allocation handlers
type FleetHandler struct {
	fleetUC usecase.FleetUsecase
	logger  *slog.Logger
}

// NewFleetHandler is the constructor for FleetHandler
func NewFleetHandler(params FleetHandlerParams) *FleetHandler {
	return &FleetHandler{
		fleetUC: params.FleetUC,
		logger:  params.Logger,
	}
}

// AllocateCampaignRequest represents the request body for putting a campaign on a device
type AllocateCampaignRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
}

// HeartbeatRequest represents one telemetry report from a device. The
// device credentials travel in the X-Device-Id and X-Device-Secret
// headers, not in the body.
type HeartbeatRequest struct {
	ContentHash    string `json:"content_hash"`
	Uptime         int    `json:"uptime" validate:"min=0"`
	BatteryLevel   int    `json:"battery_level" validate:"min=0,max=100"`
	SignalStrength int    `json:"signal_strength"`
	ErrorCode      string `json:"error_code"`
}

// GetOverview returns aggregate fleet health counters.
func (h *FleetHandler) GetOverview(c echo.Context) error {
	overview, err := h.fleetUC.GetFleetOverview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// GetDevices returns one page of devices with derived status.
func (h *FleetHandler) GetDevices(c echo.Context) error {
	input := &usecase.DeviceListInput{}

	if raw := c.QueryParam("status"); raw != "" {
		input.Status = &raw
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid offset parameter")
		}
		input.Offset = offset
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	devices, err := h.fleetUC.GetDevices(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDeviceDetail returns one device with telemetry and allocation.
func (h *FleetHandler) GetDeviceDetail(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	detail, err := h.fleetUC.GetDeviceDetail(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetDeviceTelemetry returns the recent telemetry of a device.
func (h *FleetHandler) GetDeviceTelemetry(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	samples, err := h.fleetUC.GetDeviceTelemetry(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, samples)
}

// AllocateCampaign puts a campaign on a device.
func (h *FleetHandler) AllocateCampaign(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req AllocateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid allocation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	allocation, err := h.fleetUC.AllocateCampaign(c.Request().Context(), adminID, req.CampaignID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, allocation)
}

// DeallocateCampaign completes the device's active allocation.
func (h *FleetHandler) DeallocateCampaign(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.fleetUC.DeallocateCampaign(c.Request().Context(), adminID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Campaign deallocated"})
}

// Heartbeat ingests one telemetry report. Devices authenticate with
// their hardware ID and secret headers, not with a user token.
func (h *FleetHandler) Heartbeat(c echo.Context) error {
	hardwareID := c.Request().Header.Get("X-Device-Id")
	secret := c.Request().Header.Get("X-Device-Secret")
	if hardwareID == "" || secret == "" {
		return response.Unauthorized(c, "DEVICE_AUTH_REQUIRED", "Missing device credentials")
	}

	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid heartbeat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.HeartbeatInput{
		HardwareID:     hardwareID,
		Secret:         secret,
		ContentHash:    req.ContentHash,
		Uptime:         req.Uptime,
		BatteryLevel:   req.BatteryLevel,
		SignalStrength: req.SignalStrength,
		ErrorCode:      req.ErrorCode,
	}

	if err := h.fleetUC.RecordHeartbeat(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Heartbeat recorded"})
}
