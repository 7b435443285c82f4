package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alchez/shopify-integration/internal/application/sync"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID = 1

// GormSyncSettingsRepository implements sync.SettingsStore using GORM
type GormSyncSettingsRepository struct {
	db *gorm.DB
}

// NewGormSyncSettingsRepository creates a new GormSyncSettingsRepository
func NewGormSyncSettingsRepository(db *gorm.DB) *GormSyncSettingsRepository {
	return &GormSyncSettingsRepository{db: db}
}

// LastPayoutSync returns the payout cursor, or nil before the first pass
func (r *GormSyncSettingsRepository) LastPayoutSync(ctx context.Context) (*time.Time, error) {
	var model models.SyncSettingsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.LastPayoutSync, nil
}

// SetLastPayoutSync advances the payout cursor
func (r *GormSyncSettingsRepository) SetLastPayoutSync(ctx context.Context, t time.Time) error {
	model := &models.SyncSettingsModel{
		ID:             settingsRowID,
		LastPayoutSync: &t,
		UpdatedAt:      time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// Ensure GormSyncSettingsRepository implements SettingsStore
var _ sync.SettingsStore = (*GormSyncSettingsRepository)(nil)
