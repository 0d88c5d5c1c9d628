package bootstrap

import (
	"context"

	"mentor-availability/internal/infra/db"
	"mentor-availability/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB hands out a lazily connected pool so the remote backend never dials Postgres.
func NewDB(lc fx.Lifecycle, cfg config.Config) db.PoolFunc {
	pool, cleanup := db.Lazy(cfg.DB)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool
}
