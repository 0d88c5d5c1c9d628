package components

import (
	"log/slog"

	"mentor-availability/internal/infra/cache"
	"mentor-availability/internal/infra/db"
	"mentor-availability/internal/infra/remote"
	"mentor-availability/internal/infra/repository"
	"mentor-availability/internal/infra/uow"
	"mentor-availability/internal/pkg/config"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/pkg/jwt"
	"mentor-availability/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewAvailabilityStores,
	),
)

type StoreParams struct {
	fx.In

	Config config.Config
	Pool   db.PoolFunc
	Tokens *jwt.Service
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

type StoreResult struct {
	fx.Out

	Store    shared.AvailabilityStore
	Defaults shared.DefaultsProvider
}

// NewAvailabilityStores selects the backend named by STORE_BACKEND and puts the
// defaults cache in front of the profile lookup when redis is configured.
func NewAvailabilityStores(p StoreParams) (StoreResult, error) {
	var (
		store    shared.AvailabilityStore
		defaults shared.DefaultsProvider
	)

	switch p.Config.Engine.StoreBackend {
	case config.StoreBackendRemote:
		client := remote.NewClient(p.Config.Remote.BaseURL, p.Config.Remote.Timeout, p.Tokens)
		store, defaults = client, client
	default:
		pool, err := p.Pool()
		if err != nil {
			return StoreResult{}, errs.Wrap(err, "failed to open availability database")
		}
		runner := uow.NewPostgresUoW(pool)
		store = repository.NewAvailabilityRepository(runner)
		defaults = repository.NewProfileRepository(runner)
	}

	if p.Redis != nil {
		defaults = cache.NewDefaultsCache(defaults, p.Redis, p.Config.Redis.DefaultsTTL, p.Logger)
	}

	p.Logger.Info("availability store ready",
		"backend", p.Config.Engine.StoreBackend,
		"defaults_cache", p.Redis != nil,
	)

	return StoreResult{Store: store, Defaults: defaults}, nil
}
