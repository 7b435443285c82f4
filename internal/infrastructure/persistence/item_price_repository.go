package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormItemPriceRepository implements catalog.ItemPriceRepository using GORM
type GormItemPriceRepository struct {
	db *gorm.DB
}

// NewGormItemPriceRepository creates a new GormItemPriceRepository
func NewGormItemPriceRepository(db *gorm.DB) *GormItemPriceRepository {
	return &GormItemPriceRepository{db: db}
}

// FindByItemAndPriceList finds the price entry for an item on a price list
func (r *GormItemPriceRepository) FindByItemAndPriceList(ctx context.Context, itemCode, priceList string) (*catalog.ItemPrice, error) {
	var model models.ItemPriceModel
	if err := r.db.WithContext(ctx).
		Where("item_code = ? AND price_list = ?", itemCode, priceList).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a price entry. The item/price-list pair is the
// natural key, so inserts conflict-update on it.
func (r *GormItemPriceRepository) Save(ctx context.Context, price *catalog.ItemPrice) error {
	model := &models.ItemPriceModel{}
	model.FromDomain(price)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_code"}, {Name: "price_list"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// Ensure GormItemPriceRepository implements ItemPriceRepository
var _ catalog.ItemPriceRepository = (*GormItemPriceRepository)(nil)
