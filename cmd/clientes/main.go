package main

import (
	"context"
	"log/slog"
	"os"

	"clientes/config"
	"clientes/internal/delivery"
	"clientes/internal/delivery/http"
	"clientes/internal/delivery/http/middleware"
	"clientes/internal/delivery/http/router/handler"
	"clientes/internal/infra/auth"
	logs "clientes/internal/infra/log"
	"clientes/internal/infra/persistence/postgres"
	"clientes/internal/infra/storage"
	"clientes/internal/usecase"
	"clientes/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedUsersParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Auth   usecase.AuthUsecase
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
			seedUsers,
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
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewRegionRepository,
			postgres.NewUserRepository,
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
			impl.NewCustomerService,
			impl.NewAuthService,
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
			handler.NewCustomerHandler,
			handler.NewAuthHandler,
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

// seedUsers creates the configured accounts once the database is reachable.
// Hooks run in registration order, so postgres.New has already migrated.
func seedUsers(params seedUsersParams) {
	seeds := make([]usecase.SeedUser, 0, len(params.Config.Auth.Users))
	for _, u := range params.Config.Auth.Users {
		seeds = append(seeds, usecase.SeedUser{
			Username: u.Username,
			Password: u.Password,
			Roles:    u.Roles,
		})
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Auth.EnsureUsers(ctx, seeds)
		},
	})
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
