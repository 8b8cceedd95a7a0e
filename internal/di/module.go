package di

import (
	"go.uber.org/fx"

	"github.com/greenloop/cleanearth/internal/app"
	"github.com/greenloop/cleanearth/internal/config"
	"github.com/greenloop/cleanearth/internal/logger"
	"github.com/greenloop/cleanearth/internal/pkg/auth"
	"github.com/greenloop/cleanearth/internal/server/http/handlers"
	"github.com/greenloop/cleanearth/internal/server/http/router"
	"github.com/greenloop/cleanearth/internal/storage/blob"
	"github.com/greenloop/cleanearth/internal/storage/postgres"
	"github.com/greenloop/cleanearth/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		blob.Module,
		usecase.Module,
		fx.Provide(
			func(s *blob.Store) usecase.PhotoStore { return s },
			func(s *blob.Store) handlers.PhotoResolver { return s },
			func(s *postgres.Storage) handlers.Pinger { return s },
			func(f *app.TrackerFacade) handlers.TrackerFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
