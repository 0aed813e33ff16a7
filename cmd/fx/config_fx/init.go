package config_fx

import (
	"tripplanner/internal/config"

	"go.uber.org/fx"
)

var Module = fx.Provide(config.Load)
