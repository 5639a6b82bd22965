package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bookcatalog/internal/app"
	"github.com/polkiloo/bookcatalog/internal/config"
	"github.com/polkiloo/bookcatalog/internal/logger"
	"github.com/polkiloo/bookcatalog/internal/metrics"
	"github.com/polkiloo/bookcatalog/internal/pkg/auth"
	"github.com/polkiloo/bookcatalog/internal/server/http/handlers"
	"github.com/polkiloo/bookcatalog/internal/server/http/router"
	"github.com/polkiloo/bookcatalog/internal/storage/postgres"
	"github.com/polkiloo/bookcatalog/internal/usecase"
)

// Module assembles the application graph. Extra options are appended last
// so tests can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.CatalogFacade) handlers.CatalogFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
