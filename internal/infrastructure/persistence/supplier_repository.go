package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormSupplierRepository implements catalog.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByNameOrShopifyID finds a supplier by exact name or normalized id.
// Returns (nil, nil) when nothing matched.
func (r *GormSupplierRepository) FindByNameOrShopifyID(ctx context.Context, name, shopifyID string) (*catalog.Supplier, error) {
	var model models.SupplierModel
	err := r.db.WithContext(ctx).
		Where("name = ? OR shopify_supplier_id = ?", name, shopifyID).
		Order("name ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *catalog.Supplier) error {
	model := &models.SupplierModel{}
	model.FromDomain(supplier)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ catalog.SupplierRepository = (*GormSupplierRepository)(nil)
