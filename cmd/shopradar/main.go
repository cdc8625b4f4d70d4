package main

import (
	"context"
	"log/slog"
	"os"

	"shopradar/config"
	"shopradar/internal/delivery"
	"shopradar/internal/delivery/http"
	"shopradar/internal/delivery/http/middleware"
	"shopradar/internal/delivery/http/router/handler"
	"shopradar/internal/delivery/worker"
	"shopradar/internal/infra/auth"
	"shopradar/internal/infra/directions"
	"shopradar/internal/infra/geolocation"
	"shopradar/internal/infra/localstore"
	logs "shopradar/internal/infra/log"
	"shopradar/internal/infra/notification"
	"shopradar/internal/infra/persistence/postgres"
	"shopradar/internal/infra/pubsub"
	"shopradar/internal/infra/qrcode"
	"shopradar/internal/usecase"
	"shopradar/internal/usecase/impl"

	"github.com/benbjohnson/clock"
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
			clock.New,
			postgres.New,
		),
		localstore.Module,
		geolocation.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
			postgres.NewReminderRepository,
			postgres.NewFavoriteRepository,
			postgres.NewProfileRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
		directions.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthState,
			impl.NewLocationService,
			impl.NewPersistenceService,
			impl.NewPreferenceService,
			impl.NewFavoriteService,
			impl.NewSearchService,
			impl.NewStoreService,
			impl.NewDirectionsService,
			impl.NewSessionService,
			impl.NewProximityMonitor,
			impl.NewReminderMonitor,
			// The monitors follow preference changes made through the preference service.
			fx.Annotate(
				func(m usecase.ProximityUsecase) usecase.PreferenceObserver { return m },
				fx.ResultTags(`group:"preference_observers"`),
			),
			fx.Annotate(
				func(m usecase.ReminderUsecase) usecase.PreferenceObserver { return m },
				fx.ResultTags(`group:"preference_observers"`),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewProximityHandler,
			handler.NewReminderHandler,
			handler.NewFavoriteHandler,
			handler.NewPreferenceHandler,
			handler.NewSearchHandler,
			handler.NewStoreHandler,
			handler.NewDirectionsHandler,
			handler.NewSessionHandler,
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
			fx.Annotate(
				worker.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer serves every delivery once the infra start hooks have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
