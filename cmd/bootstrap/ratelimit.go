package bootstrap

import (
	"context"
	"log/slog"

	"gin-shareit/internal/handler/middleware"
	"gin-shareit/internal/infra/ratelimit"
	"gin-shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewLimiter,
	),
)

// NewLimiter shares counters through Redis when REDIS_ADDR is set and falls
// back to a per-process token bucket otherwise.
func NewLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) middleware.Limiter {
	if cfg.Redis.Addr == "" {
		logger.Info("rate limiter: in-memory", "limit", cfg.RateLimit.Bookings, "window", cfg.RateLimit.Window)
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Bookings, cfg.RateLimit.Window)
	}

	client := ratelimit.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := ratelimit.Ping(ctx, client); err != nil {
				// requests still pass when Redis is down, see middleware.RateLimit
				logger.Warn("rate limiter: redis unreachable", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("rate limiter: redis", "addr", cfg.Redis.Addr, "limit", cfg.RateLimit.Bookings, "window", cfg.RateLimit.Window)
	return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Bookings, cfg.RateLimit.Window)
}
