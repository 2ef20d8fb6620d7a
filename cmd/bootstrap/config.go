package bootstrap

import (
	"go.uber.org/fx"

	"parkhub/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
