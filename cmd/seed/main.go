// Command seed loads the starter menu, settings and an admin account.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"menudash/config"
	"menudash/internal/domain/entity"
	"menudash/internal/infra/auth"
	logs "menudash/internal/infra/log"
	"menudash/internal/infra/persistence/postgres"
	"menudash/internal/usecase"
	"menudash/internal/usecase/impl"
	"menudash/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedOptions struct {
	reset         bool
	adminName     string
	adminEmail    string
	adminPassword string
}

type runSeedParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Config     *config.Config
	Logger     *slog.Logger
	DB         *gorm.DB
	Seeder     usecase.SeedUsecase
	Options    seedOptions
}

func main() {
	opts := seedOptions{}
	flag.BoolVar(&opts.reset, "reset", false, "Drop every table before seeding")
	flag.StringVar(&opts.adminName, "admin-name", "Admin User", "Display name of the seeded admin")
	flag.StringVar(&opts.adminEmail, "admin-email", "admin@menudash.local", "Email of the seeded admin")
	flag.StringVar(&opts.adminPassword, "admin-password", os.Getenv("MENUDASH_ADMIN_PASSWORD"), "Password of the seeded admin (defaults to $MENUDASH_ADMIN_PASSWORD)")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Supply(opts),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewUserService,
			impl.NewSeedService,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(params runSeedParams) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				exitCode := 0
				if err := seed(params); err != nil {
					params.Logger.Error("Seed failed", slog.Any("error", err))
					exitCode = 1
				}
				_ = params.Shutdowner.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func seed(params runSeedParams) error {
	started := time.Now()
	ctx := context.Background()
	db := params.DB.WithContext(ctx)

	if params.Options.reset {
		params.Logger.Warn("Dropping every table before seeding")
		if err := postgres.Reset(db); err != nil {
			return err
		}
	} else if err := postgres.Migrate(db); err != nil {
		return err
	}

	restaurant := params.Config.Restaurant
	catalogue := &usecase.SeedCatalogue{
		Categories: starterCategories(),
		Items:      starterItems(),
		Settings:   entity.NewDefaultSettings(restaurant.Name, restaurant.Phone, restaurant.Email, restaurant.Instagram),
	}

	if params.Options.adminPassword != "" {
		catalogue.Admin = &usecase.CreateUserInput{
			Name:     params.Options.adminName,
			Email:    params.Options.adminEmail,
			Password: params.Options.adminPassword,
			Role:     entity.RoleAdmin,
		}
	} else {
		params.Logger.Warn("No admin password given, skipping admin account")
	}

	report, err := params.Seeder.Seed(ctx, catalogue)
	if err != nil {
		return errors.Wrap(err, "failed to seed catalogue")
	}

	params.Logger.Info("Database seeded",
		slog.Int("categories", report.Categories),
		slog.Int("items", report.Items),
		slog.Bool("settings", report.SettingsMade),
		slog.Bool("admin", report.AdminMade),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return nil
}
