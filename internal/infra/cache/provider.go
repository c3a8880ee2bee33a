package cache

import (
	"context"
	"log/slog"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/lifecycle"
	"fleetroute/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the forecast cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewForecastCache creates the forecast cache selected by weather.cacheBackend
func NewForecastCache(params Params) (service.ForecastCache, error) {
	cfg := params.Config.Weather
	logger := params.Logger

	switch cfg.CacheBackend {
	case "", constants.CacheBackendMemory:
		memory := NewMemoryCache(cfg.CacheTTL)
		janitorCtx, stopJanitor := context.WithCancel(context.Background())

		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go memory.Run(janitorCtx, janitorInterval)

				return nil
			},
			OnStop: func(context.Context) error {
				stopJanitor()

				return nil
			},
		})

		logger.Info("Using in-memory forecast cache", slog.Duration("ttl", cfg.CacheTTL))

		return memory, nil

	case constants.CacheBackendRedis:
		if params.Config.Redis == nil || params.Config.Redis.URL == "" {
			return nil, errors.New("redis url is required for redis cache backend")
		}
		opt, err := redis.ParseURL(params.Config.Redis.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse redis url")
		}
		client := redis.NewClient(opt)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing forecast cache")

				return errors.WithStack(client.Close())
			},
		})

		logger.Info("Using redis forecast cache",
			slog.String("addr", opt.Addr),
			slog.Duration("ttl", cfg.CacheTTL),
		)

		return NewRedisCache(client, cfg.CacheTTL, logger), nil

	default:
		return nil, errors.Errorf("unknown forecast cache backend: %s", cfg.CacheBackend)
	}
}

// Module provides the forecast cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewForecastCache),
)
