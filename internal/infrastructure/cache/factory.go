package cache

import (
	"go.uber.org/zap"
)

// NewJobLockStore creates the appropriate job lock store for the deployment.
// When Redis is reachable it backs the locks so multiple instances exclude
// each other; otherwise the store falls back to process-local locking.
func NewJobLockStore(cfg RedisConfig, logger *zap.Logger) JobLockStore {
	store, err := NewRedisJobLockStore(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory job locks",
			zap.String("host", cfg.Host),
			zap.Error(err),
		)
		return NewInMemoryJobLockStore()
	}

	logger.Info("using redis job locks", zap.String("host", cfg.Host))
	return store
}
