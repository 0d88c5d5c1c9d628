package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mentor-availability/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// PoolFunc returns the shared pool, connecting on the first call.
type PoolFunc func() (*pgxpool.Pool, error)

// Lazy defers Connect until a component asks for the pool. The returned close
// func is a no-op when the pool was never opened.
func Lazy(cfg config.DBConfig) (PoolFunc, func()) {
	var (
		once    sync.Once
		pool    *pgxpool.Pool
		cleanup func()
		err     error
	)
	get := func() (*pgxpool.Pool, error) {
		once.Do(func() {
			pool, cleanup, err = Connect(cfg)
		})
		return pool, err
	}
	closeFn := func() {
		if cleanup != nil {
			cleanup()
		}
	}
	return get, closeFn
}
