package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/infra/cache"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewServiceCatalog,
			fx.ParamTags(``, ``, `name:"origin_catalog"`),
		),
	),
)

func NewServiceCatalog(lc fx.Lifecycle, cfg config.Config, origin shared.ServiceCatalog) shared.ServiceCatalog {
	if cfg.Redis.Addr == "" {
		return origin
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable; service lookups fall through to the store", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewServiceCatalog(origin, client, cfg.Redis.ServiceTTL)
}
