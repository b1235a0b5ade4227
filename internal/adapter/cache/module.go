package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/AbhishekM14/order-management-api/internal/config"
	"github.com/AbhishekM14/order-management-api/internal/usecase"
)

// Module exposes the product cache implementation to the fx graph. Without a
// configured Redis address the noop cache is provided instead.
var Module = fx.Provide(newCache)

type cacheParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newCache(p cacheParams) (usecase.ProductCache, error) {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("product cache disabled")
		return NoopCache{}, nil
	}

	client, err := Connect(p.Ctx, p.Config.RedisAddress, p.Config.RedisPassword)
	if err != nil {
		return nil, err
	}

	p.Logger.Info("product cache enabled", slog.String("addr", p.Config.RedisAddress))
	return NewRedisCache(client, p.Config.ProductCacheTTL, p.Logger), nil
}
