package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormDeliveryNoteRepository implements selling.DeliveryNoteRepository using GORM
type GormDeliveryNoteRepository struct {
	db *gorm.DB
}

// NewGormDeliveryNoteRepository creates a new GormDeliveryNoteRepository
func NewGormDeliveryNoteRepository(db *gorm.DB) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{db: db}
}

// FindByShopifyOrderID finds the delivery note linked to a remote order
func (r *GormDeliveryNoteRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.DeliveryNote, error) {
	var model models.DeliveryNoteModel
	if err := r.db.WithContext(ctx).First(&model, "shopify_order_id = ?", shopifyOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selling.ErrDocumentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a delivery note
func (r *GormDeliveryNoteRepository) Save(ctx context.Context, note *selling.DeliveryNote) error {
	model := models.DeliveryNoteModelFromDomain(note)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormDeliveryNoteRepository implements DeliveryNoteRepository
var _ selling.DeliveryNoteRepository = (*GormDeliveryNoteRepository)(nil)
