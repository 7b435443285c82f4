package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormSalesOrderRepository implements selling.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByShopifyOrderID finds the sales order linked to a remote order
func (r *GormSalesOrderRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.SalesOrder, error) {
	var model models.SalesOrderModel
	if err := r.db.WithContext(ctx).First(&model, "shopify_order_id = ?", shopifyOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selling.ErrDocumentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a sales order
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *selling.SalesOrder) error {
	model := models.SalesOrderModelFromDomain(order)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ selling.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
