package di

import (
	"go.uber.org/fx"

	"github.com/AbhishekM14/order-management-api/internal/adapter/cache"
	"github.com/AbhishekM14/order-management-api/internal/app"
	"github.com/AbhishekM14/order-management-api/internal/config"
	"github.com/AbhishekM14/order-management-api/internal/logger"
	"github.com/AbhishekM14/order-management-api/internal/pkg/auth"
	"github.com/AbhishekM14/order-management-api/internal/server/http/router"
	"github.com/AbhishekM14/order-management-api/internal/storage/postgres"
	"github.com/AbhishekM14/order-management-api/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
