package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// ---------------------------------------------------------------------------
// ItemReader implementation
// ---------------------------------------------------------------------------

// FindByCode finds an item by its code
func (r *GormItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByName finds an item by its name. Names are not unique; ordering by
// code makes the pick deterministic when duplicates exist.
func (r *GormItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("code ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByShopifyProductID finds the item linked to a remote product. Several
// items can share a product id (a template and its variants), so the template
// wins, then the lowest code.
func (r *GormItemRepository) FindByShopifyProductID(ctx context.Context, productID int64) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("shopify_product_id = ?", productID).
		Order("has_variants DESC, code ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByShopifyVariantID finds the item linked to a remote variant
func (r *GormItemRepository) FindByShopifyVariantID(ctx context.Context, variantID int64) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("shopify_variant_id = ?", variantID).
		Order("code ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindVariantWithAttributes finds the variant of a template whose attribute
// rows carry exactly the wanted values. Attribute rows are stored as JSON, so
// the conjunctive match runs in memory over the template's variants. Ties are
// broken by the lowest item code; the code ordering of the scan guarantees it.
func (r *GormItemRepository) FindVariantWithAttributes(ctx context.Context, templateCode string, values map[string]string) (*catalog.Item, error) {
	var itemModels []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("variant_of = ?", templateCode).
		Order("code ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	for i := range itemModels {
		item, err := itemModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		if item.MatchesAttributeValues(values) {
			return item, nil
		}
	}
	return nil, catalog.ErrItemNotFound
}

// ---------------------------------------------------------------------------
// ItemWriter implementation
// ---------------------------------------------------------------------------

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	model, err := models.ItemModelFromDomain(item)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormItemRepository implements ItemRepository
var _ catalog.ItemRepository = (*GormItemRepository)(nil)
