package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fleetroute/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "forecast:"

// RedisCache shares forecasts between replicas through Redis. Failures are
// logged and treated as misses; the cache never fails an analysis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached entries for key.
func (c *RedisCache) Get(ctx context.Context, key string) ([]entity.WeatherConditions, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Forecast cache read failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	var entries []entity.WeatherConditions
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.WarnContext(ctx, "Forecast cache entry is corrupt",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, false
	}

	return entries, true
}

// Set stores entries under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, entries []entity.WeatherConditions) {
	data, err := json.Marshal(entries)
	if err != nil {
		c.logger.WarnContext(ctx, "Forecast cache encode failed", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Forecast cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
