package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/response"
	"vehiclee/internal/domain/entity"
	"vehiclee/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler holds dependencies for campaign management handlers
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	CampaignName string     `json:"campaign_name" validate:"required,max=255"`
	Description  string     `json:"description"`
	City         string     `json:"city" validate:"required"`
	ZoneID       *uuid.UUID `json:"zone_id"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      time.Time  `json:"end_date" validate:"required"`
	NumberOfCars int        `json:"number_of_cars" validate:"required,min=1"`
	DailyBudget  int64      `json:"daily_budget" validate:"required,min=1"`
	TotalBudget  int64      `json:"total_budget" validate:"required,min=1"`
}

// UploadCreativeRequest represents the request body for uploading a creative asset
type UploadCreativeRequest struct {
	AssetBase64  string `json:"asset_base64" validate:"required"`
	ContentType  string `json:"content_type" validate:"required"`
	CreativeType string `json:"creative_type" validate:"required,oneof=template custom ai_generated"`
	TemplateID   string `json:"template_id"`
}

// GetCampaigns returns all campaigns of the caller.
func (h *CampaignHandler) GetCampaigns(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaigns, err := h.campaignUC.GetCampaigns(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, campaigns)
}

// GetCampaignDetail returns one campaign with its creatives.
func (h *CampaignHandler) GetCampaignDetail(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	detail, err := h.campaignUC.GetCampaignDetail(c.Request().Context(), userID, campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// CreateCampaign handles draft campaign creation.
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if !req.EndDate.After(req.StartDate) {
		return response.BadRequest(c, "VALIDATION_ERROR", "end_date must be after start_date")
	}

	input := &usecase.CreateCampaignInput{
		CampaignName: req.CampaignName,
		Description:  req.Description,
		City:         req.City,
		ZoneID:       req.ZoneID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NumberOfCars: req.NumberOfCars,
		DailyBudget:  req.DailyBudget,
		TotalBudget:  req.TotalBudget,
	}

	campaign, err := h.campaignUC.CreateCampaign(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, campaign)
}

// UploadCreative handles attaching a creative asset to a campaign.
func (h *CampaignHandler) UploadCreative(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req UploadCreativeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid creative input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UploadAssetInput{
		CampaignID:   campaignID,
		AssetBase64:  req.AssetBase64,
		ContentType:  req.ContentType,
		CreativeType: entity.CreativeType(req.CreativeType),
		TemplateID:   req.TemplateID,
	}

	creative, err := h.campaignUC.UploadAsset(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, creative)
}

// ApproveCreative records the client's own approval of a creative.
func (h *CampaignHandler) ApproveCreative(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	creativeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid creative ID")
	}

	if err := h.campaignUC.ApproveCreative(c.Request().Context(), userID, creativeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Creative approved"})
}

// SubmitCreative submits a creative for compliance review.
func (h *CampaignHandler) SubmitCreative(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	creativeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid creative ID")
	}

	if err := h.campaignUC.SubmitCreative(c.Request().Context(), userID, creativeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Creative submitted for review"})
}
