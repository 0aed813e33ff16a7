package logger_fx

import (
	"tripplanner/internal/config"
	"tripplanner/internal/infra"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	}),
	fx.Invoke(registerSync),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg.LogLevel)
}

func registerSync(lc fx.Lifecycle, logger *zap.Logger) {
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
}
