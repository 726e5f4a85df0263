package di

import (
	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/adapter/aiservice"
	"github.com/tnyamakura/loyaltylink/internal/adapter/restapi"
	"github.com/tnyamakura/loyaltylink/internal/adapter/supabase"
	"github.com/tnyamakura/loyaltylink/internal/app"
	"github.com/tnyamakura/loyaltylink/internal/backend"
	"github.com/tnyamakura/loyaltylink/internal/config"
	"github.com/tnyamakura/loyaltylink/internal/logger"
	"github.com/tnyamakura/loyaltylink/internal/server/http/handlers"
	"github.com/tnyamakura/loyaltylink/internal/server/http/middleware"
	"github.com/tnyamakura/loyaltylink/internal/server/http/router"
	"github.com/tnyamakura/loyaltylink/internal/session"
	"github.com/tnyamakura/loyaltylink/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		supabase.Module,
		restapi.Module,
		aiservice.Module,
		backend.Module,
		worker.Module,
		fx.Provide(func(f *backend.Facade) handlers.LoyaltyFacade { return f }),
		fx.Provide(func(m *worker.Monitor) handlers.HealthReporter { return m }),
		fx.Provide(func(s *session.Store) middleware.SessionState { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
