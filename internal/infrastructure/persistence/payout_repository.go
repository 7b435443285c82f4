package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormPayoutRepository implements selling.PayoutRepository using GORM
type GormPayoutRepository struct {
	db *gorm.DB
}

// NewGormPayoutRepository creates a new GormPayoutRepository
func NewGormPayoutRepository(db *gorm.DB) *GormPayoutRepository {
	return &GormPayoutRepository{db: db}
}

// ExistsByPayoutID checks if a record for the remote payout exists
func (r *GormPayoutRepository) ExistsByPayoutID(ctx context.Context, payoutID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PayoutModel{}).
		Where("payout_id = ?", payoutID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByPayoutID finds the record for a remote payout
func (r *GormPayoutRepository) FindByPayoutID(ctx context.Context, payoutID int64) (*selling.Payout, error) {
	var model models.PayoutModel
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		First(&model, "payout_id = ?", payoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selling.ErrPayoutNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a payout record
func (r *GormPayoutRepository) Save(ctx context.Context, payout *selling.Payout) error {
	model := models.PayoutModelFromDomain(payout)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PayoutTransactionModel{}, "payout_record_id = ?", payout.ID).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// Ensure GormPayoutRepository implements PayoutRepository
var _ selling.PayoutRepository = (*GormPayoutRepository)(nil)
