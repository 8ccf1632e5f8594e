package memcache_fx

import (
	"go.uber.org/fx"

	mem "globetrotter/pkg/memcache"
)

var Module = fx.Provide(provideListCache)

func provideListCache() mem.ListCache {
	return mem.NewTTLCache()
}
