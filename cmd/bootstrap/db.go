package bootstrap

import (
	"context"
	"log/slog"

	"booking-core/internal/infra/db"
	"booking-core/internal/infra/repository"
	"booking-core/internal/infra/uow"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewStore,
	),
)

// Store is the persistence selected by STORE_DRIVER. Origin is the uncached
// service catalog; CacheModule decides what the use cases see.
type Store struct {
	fx.Out

	UoW    shared.UnitOfWork
	Origin shared.ServiceCatalog `name:"origin_catalog"`
}

func NewStore(lc fx.Lifecycle, cfg config.Config) (Store, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Warn("using in-memory store; data is lost on restart")
		return Store{UoW: uow.NewMemoryUoW(), Origin: uow.NewMemoryServiceCatalog()}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Store{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return Store{UoW: uow.NewPostgresUoW(pool), Origin: repository.NewServiceCatalog(pool)}, nil
}
