package bootstrap

import (
	"gin-shareit/internal/pkg/config"
	"gin-shareit/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(RegisterMetrics),
)

func RegisterMetrics(cfg config.Config) {
	if cfg.Metrics.Enabled {
		metrics.Register()
	}
}
