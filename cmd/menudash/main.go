package main

import (
	"context"
	"log/slog"
	"os"

	"menudash/config"
	"menudash/internal/delivery"
	"menudash/internal/delivery/http"
	"menudash/internal/delivery/http/middleware"
	"menudash/internal/delivery/http/router/handler"
	"menudash/internal/infra/auth"
	logs "menudash/internal/infra/log"
	"menudash/internal/infra/persistence"
	"menudash/internal/infra/persistence/postgres"
	"menudash/internal/infra/qrcode"
	"menudash/internal/usecase/impl"

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
			postgres.AutoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMenuItemRepository,
			postgres.NewCategoryRepository,
			postgres.NewSettingsRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			persistence.NewActivityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewCategoryService,
			impl.NewSettingsService,
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewAnalyticsService,
			impl.NewQRCodeUsecase,
			impl.NewPublicMenuService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMenuHandler,
			handler.NewCategoryHandler,
			handler.NewSettingsHandler,
			handler.NewUserHandler,
			handler.NewAnalyticsHandler,
			handler.NewQRCodeHandler,
			handler.NewPublicMenuHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
