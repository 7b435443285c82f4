package sync

import (
	"context"

	"go.uber.org/zap"
)

// ServiceConfig holds the top-level sync switches.
type ServiceConfig struct {
	// Enabled gates all sync triggers; disabled deployments reject triggers
	Enabled bool
}

// Service is the application facade over the sync engines. Triggers are
// asynchronous: they hand the pass to the task queue and report acceptance,
// not outcome. The queue's single-flight guarantee means a trigger during a
// running pass of the same kind is rejected rather than queued behind it.
type Service struct {
	products *ProductSyncService
	payouts  *PayoutSyncService
	queue    TaskQueue
	cfg      ServiceConfig
	logger   *zap.Logger
}

// NewService creates a new sync Service.
func NewService(products *ProductSyncService, payouts *PayoutSyncService, queue TaskQueue, cfg ServiceConfig, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		payouts:  payouts,
		queue:    queue,
		cfg:      cfg,
		logger:   logger,
	}
}

// Enabled reports whether sync triggers are accepted at all.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// TriggerProductSync queues a product sync pass. Returns false when syncing
// is disabled or a product pass is already queued or running.
func (s *Service) TriggerProductSync() bool {
	if !s.cfg.Enabled {
		return false
	}
	return s.queue.Enqueue(JobProductSync, func(ctx context.Context) {
		if err := s.products.SyncProducts(ctx); err != nil {
			s.logger.Error("product sync pass failed", zap.Error(err))
		}
	})
}

// TriggerPayoutSync queues a payout sync pass. Returns false when syncing
// is disabled or a payout pass is already queued or running.
func (s *Service) TriggerPayoutSync() bool {
	if !s.cfg.Enabled {
		return false
	}
	return s.queue.Enqueue(JobPayoutSync, func(ctx context.Context) {
		if err := s.payouts.SyncPayouts(ctx); err != nil {
			s.logger.Error("payout sync pass failed", zap.Error(err))
		}
	})
}
