package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/matchcore/internal/cache"
	"github.com/oggyb/matchcore/internal/cluster"
	"github.com/oggyb/matchcore/internal/config"
	"github.com/oggyb/matchcore/internal/metrics"
	"github.com/oggyb/matchcore/internal/ratelimit"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Limiter    *ratelimit.Governor
	Clusters   *cluster.Resolver
}

// New creates a new AppContext. The rate governor is built from cfg.RateLimit
// over the Redis window counter.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *cache.RedisCache,
	logger *slog.Logger,
	m *metrics.Metrics,
) (*AppContext, error) {
	limiter, err := ratelimit.NewGovernor(rdb, ratelimit.PoliciesFromConfig(cfg.RateLimit), logger, m)
	if err != nil {
		return nil, err
	}
	clusters, err := cluster.NewResolver()
	if err != nil {
		return nil, err
	}
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Metrics:    m,
		Limiter:    limiter,
		Clusters:   clusters,
	}, nil
}
