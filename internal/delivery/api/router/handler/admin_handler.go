package handler

import (
	"log/slog"
	"net/http"

	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/response"
	"vehiclee/internal/domain/entity"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Logger       *slog.Logger
}

// AdminHandler holds dependencies for the admin compliance handlers
type AdminHandler struct {
	complianceUC usecase.ComplianceUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		complianceUC: params.ComplianceUC,
		logger:       params.Logger,
	}
}

// ReviewCreativeRequest represents the request body for deciding a queued creative
type ReviewCreativeRequest struct {
	Approved        bool    `json:"approved"`
	RejectionReason *string `json:"rejection_reason"`
}

// RejectCampaignRequest represents the request body for rejecting a campaign
type RejectCampaignRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// GetQueue returns compliance review entries, optionally filtered by status.
func (h *AdminHandler) GetQueue(c echo.Context) error {
	var status *entity.ReviewStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.ReviewStatus(raw)
		status = &s
	}

	entries, err := h.complianceUC.GetQueue(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// GetStats returns the review queue counters.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.complianceUC.GetStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ReviewCreative decides a pending creative review entry.
func (h *AdminHandler) ReviewCreative(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review entry ID")
	}

	var req ReviewCreativeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	input := &usecase.ReviewCreativeInput{
		EntryID:         entryID,
		Approved:        req.Approved,
		RejectionReason: req.RejectionReason,
	}

	if err := h.complianceUC.ReviewCreative(c.Request().Context(), adminID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review recorded"})
}

// ApproveCampaign moves a campaign from awaiting_approval to approved.
func (h *AdminHandler) ApproveCampaign(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	if err := h.complianceUC.ApproveCampaign(c.Request().Context(), adminID, campaignID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Campaign approved"})
}

// RejectCampaign moves a campaign from awaiting_approval to cancelled.
func (h *AdminHandler) RejectCampaign(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req RejectCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.complianceUC.RejectCampaign(c.Request().Context(), adminID, campaignID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Campaign rejected"})
}

// GetTickets returns every support ticket in the system.
func (h *AdminHandler) GetTickets(c echo.Context) error {
	tickets, err := h.complianceUC.GetTickets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tickets)
}
