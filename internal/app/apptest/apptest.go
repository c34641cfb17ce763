// Package apptest wires an AppContext over in-memory SQLite and miniredis for
// service tests.
package apptest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/cache"
	"github.com/oggyb/matchcore/internal/config"
	"github.com/oggyb/matchcore/internal/db/dbtest"
	"github.com/oggyb/matchcore/internal/logger"
	"github.com/oggyb/matchcore/internal/metrics"
)

// New returns an isolated AppContext. tweak, when given, adjusts the config
// before the rate governor is built.
func New(t *testing.T, tweak ...func(*config.Config)) (*app.AppContext, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Redis.Addr = mr.Addr()
	for _, fn := range tweak {
		fn(cfg)
	}

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	appCtx, err := app.New(cfg, dbtest.New(t), redisCache, logger.Discard(), metrics.New())
	require.NoError(t, err)
	return appCtx, mr
}
