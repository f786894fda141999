package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/kicktracker/internal/app"
	"github.com/polkiloo/kicktracker/internal/config"
	"github.com/polkiloo/kicktracker/internal/logger"
	"github.com/polkiloo/kicktracker/internal/pkg/auth"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
	"github.com/polkiloo/kicktracker/internal/pkg/idgen"
	"github.com/polkiloo/kicktracker/internal/server/http/router"
	"github.com/polkiloo/kicktracker/internal/storage/postgres"
	"github.com/polkiloo/kicktracker/internal/usecase"
)

// Core wires everything except the HTTP runtime; the seed command uses it directly.
func Core(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		fx.Provide(
			clock.NewRealClock,
			func() idgen.Generator { return idgen.NewUUIDGenerator() },
		),
		auth.Module,
		postgres.Module,
		usecase.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// Module wires the full HTTP service.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		Core(),
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
