package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/application/sync"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormSyncLogRepository implements sync.SyncLogger using GORM. Recording is
// best-effort: a failed insert is logged and swallowed so the audit trail can
// never fail a sync pass.
type GormSyncLogRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormSyncLogRepository creates a new GormSyncLogRepository
func NewGormSyncLogRepository(db *gorm.DB, logger *zap.Logger) *GormSyncLogRepository {
	return &GormSyncLogRepository{db: db, logger: logger}
}

// Record writes one audit entry
func (r *GormSyncLogRepository) Record(ctx context.Context, status sync.Status, message string, err error) {
	model := &models.SyncLogModel{
		Status:    string(status),
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err != nil {
		model.Error = err.Error()
	}

	if dbErr := r.db.WithContext(ctx).Create(model).Error; dbErr != nil {
		r.logger.Error("sync log write failed",
			zap.String("status", string(status)),
			zap.String("message", message),
			zap.Error(dbErr),
		)
	}
}

// Ensure GormSyncLogRepository implements SyncLogger
var _ sync.SyncLogger = (*GormSyncLogRepository)(nil)
