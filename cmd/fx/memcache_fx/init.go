package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(provideSessionRegistry)

func provideSessionRegistry() *mem.SessionRegistry {
	return mem.NewSessionRegistry(30 * time.Minute)
}
