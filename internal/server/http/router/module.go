package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/AbhishekM14/order-management-api/internal/app"
	"github.com/AbhishekM14/order-management-api/internal/config"
	"github.com/AbhishekM14/order-management-api/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade *app.CommerceFacade
	Config *config.Config
	Logger *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	limits := handlers.PageLimits{DefaultSize: p.Config.DefaultPageSize, MaxSize: p.Config.MaxPageSize}
	return Setup(p.Facade, p.Facade, p.Facade, limits, p.Logger)
}
