// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/router/handler"
	"vehiclee/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ClientHandler   *handler.ClientHandler
	CampaignHandler *handler.CampaignHandler
	DriverHandler   *handler.DriverHandler
	AdminHandler    *handler.AdminHandler
	FleetHandler    *handler.FleetHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	clientHandler   *handler.ClientHandler
	campaignHandler *handler.CampaignHandler
	driverHandler   *handler.DriverHandler
	adminHandler    *handler.AdminHandler
	fleetHandler    *handler.FleetHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		clientHandler:   params.ClientHandler,
		campaignHandler: params.CampaignHandler,
		driverHandler:   params.DriverHandler,
		adminHandler:    params.AdminHandler,
		fleetHandler:    params.FleetHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device telemetry ingestion. Devices authenticate with the
	// X-Device-Id and X-Device-Secret headers.
	e.POST("/api/device/heartbeat", r.fleetHandler.Heartbeat)

	// Session routes. /me answers anonymous callers with a null user,
	// so the token is optional here.
	authGroup := e.Group("/api/auth")
	authGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		authGroup.GET("/me", r.authHandler.Me)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Advertiser routes (require "client" role)
	clientGroup := e.Group("/api/client")
	clientGroup.Use(r.authMiddleware.Authenticate)
	clientGroup.Use(r.authMiddleware.RequireRole(entity.RoleClient))
	{
		clientGroup.GET("/profile", r.clientHandler.GetProfile)
		clientGroup.GET("/wallet", r.clientHandler.GetWallet)
		clientGroup.GET("/wallet/ledger", r.clientHandler.GetWalletLedger)
		clientGroup.GET("/invoices", r.clientHandler.GetInvoices)
		clientGroup.GET("/zones", r.clientHandler.GetZones)

		campaignsGroup := clientGroup.Group("/campaigns")
		{
			campaignsGroup.GET("", r.campaignHandler.GetCampaigns)
			campaignsGroup.POST("", r.campaignHandler.CreateCampaign)
			campaignsGroup.GET("/:id", r.campaignHandler.GetCampaignDetail)
			campaignsGroup.POST("/:id/creatives", r.campaignHandler.UploadCreative)
		}

		creativesGroup := clientGroup.Group("/creatives")
		{
			creativesGroup.POST("/:id/approve", r.campaignHandler.ApproveCreative)
			creativesGroup.POST("/:id/submit", r.campaignHandler.SubmitCreative)
		}
	}

	// Driver routes (require "driver" role)
	driverGroup := e.Group("/api/driver")
	driverGroup.Use(r.authMiddleware.Authenticate)
	driverGroup.Use(r.authMiddleware.RequireRole(entity.RoleDriver))
	{
		driverGroup.GET("/profile", r.driverHandler.GetProfile)
		driverGroup.GET("/vehicles", r.driverHandler.GetVehicles)
		driverGroup.GET("/earnings", r.driverHandler.GetEarnings)
		driverGroup.GET("/tickets", r.driverHandler.GetTickets)
	}

	// Admin routes (require "admin" role)
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/queue", r.adminHandler.GetQueue)
		adminGroup.GET("/queue/stats", r.adminHandler.GetStats)
		adminGroup.POST("/queue/:id/review", r.adminHandler.ReviewCreative)
		adminGroup.POST("/campaigns/:id/approve", r.adminHandler.ApproveCampaign)
		adminGroup.POST("/campaigns/:id/reject", r.adminHandler.RejectCampaign)
		adminGroup.GET("/tickets", r.adminHandler.GetTickets)
	}

	// Fleet routes (require "admin" role)
	fleetGroup := e.Group("/api/fleet")
	fleetGroup.Use(r.authMiddleware.Authenticate)
	fleetGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		fleetGroup.GET("/overview", r.fleetHandler.GetOverview)
		fleetGroup.GET("/devices", r.fleetHandler.GetDevices)
		fleetGroup.GET("/devices/:id", r.fleetHandler.GetDeviceDetail)
		fleetGroup.GET("/devices/:id/telemetry", r.fleetHandler.GetDeviceTelemetry)
		fleetGroup.POST("/devices/:id/allocate", r.fleetHandler.AllocateCampaign)
		fleetGroup.POST("/devices/:id/deallocate", r.fleetHandler.DeallocateCampaign)
	}
}
