package memcache_fx

import (
	"time"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideFormSessionStore)

func provideFormSessionStore(lc fx.Lifecycle, cfg *config.Config) mem.SessionStore[*services.FormSession] {
	store := mem.NewTTLStore[*services.FormSession](cfg.FormSessionTTL)
	interval := max(cfg.FormSessionTTL/2, time.Second)
	lc.Append(fx.StartStopHook(
		func() { store.StartJanitor(interval) },
		store.Stop,
	))
	return store
}
