package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// KV is the part of a redis client the cache needs. *redis.Client satisfies it.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// DefaultsCache is a read-through cache in front of a DefaultsProvider. Redis
// failures are logged and the wrapped provider answers instead.
type DefaultsCache struct {
	next   shared.DefaultsProvider
	kv     KV
	ttl    time.Duration
	logger *slog.Logger
}

var _ shared.DefaultsProvider = (*DefaultsCache)(nil)

func NewDefaultsCache(next shared.DefaultsProvider, kv KV, ttl time.Duration, logger *slog.Logger) *DefaultsCache {
	return &DefaultsCache{next: next, kv: kv, ttl: ttl, logger: logger}
}

type defaultsRecord struct {
	DefaultRate          *float64  `json:"default_rate"`
	DefaultLocation      string    `json:"default_location"`
	LocationMapURL       string    `json:"location_map_url"`
	RegisteredPositionID uuid.UUID `json:"registered_position_id"`
}

func defaultsKey(mentorID uuid.UUID) string {
	return fmt.Sprintf("mentor:%s:session-defaults", mentorID)
}

func (c *DefaultsCache) Defaults(ctx context.Context, mentorID uuid.UUID) (session.Defaults, error) {
	key := defaultsKey(mentorID)

	val, err := c.kv.Get(ctx, key).Result()
	switch {
	case err == nil:
		var rec defaultsRecord
		if err := json.Unmarshal([]byte(val), &rec); err == nil {
			return session.Defaults(rec), nil
		}
		c.logger.Warn("discarding corrupt cached session defaults", "key", key)
	case err != redis.Nil:
		c.logger.Warn("session defaults cache read failed", "key", key, "error", err.Error())
	}

	d, err := c.next.Defaults(ctx, mentorID)
	if err != nil {
		return session.Defaults{}, err
	}

	data, err := json.Marshal(defaultsRecord(d))
	if err != nil {
		return d, nil
	}
	if err := c.kv.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("session defaults cache write failed", "key", key, "error", err.Error())
	}
	return d, nil
}
