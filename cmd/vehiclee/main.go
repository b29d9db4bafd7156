package main

import (
	"context"
	"log/slog"
	"os"

	"vehiclee/config"
	"vehiclee/internal/delivery"
	"vehiclee/internal/delivery/api"
	"vehiclee/internal/delivery/api/middleware"
	"vehiclee/internal/delivery/api/router/handler"
	"vehiclee/internal/infra/auth"
	logs "vehiclee/internal/infra/log"
	"vehiclee/internal/infra/persistence/postgres"
	"vehiclee/internal/infra/pubsub"
	"vehiclee/internal/infra/storage"
	"vehiclee/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewCampaignRepository,
			postgres.NewCreativeRepository,
			postgres.NewComplianceRepository,
			postgres.NewDeviceRepository,
			postgres.NewAllocationRepository,
			postgres.NewVehicleRepository,
			postgres.NewBillingRepository,
			postgres.NewTicketRepository,
			postgres.NewZoneRepository,
			postgres.NewAuditLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewClientService,
			impl.NewCampaignService,
			impl.NewComplianceService,
			impl.NewDriverService,
			impl.NewFleetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewClientHandler,
			handler.NewCampaignHandler,
			handler.NewDriverHandler,
			handler.NewAdminHandler,
			handler.NewFleetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
