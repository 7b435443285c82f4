package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormSalesInvoiceRepository implements selling.SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// FindByShopifyOrderID finds the invoice linked to a remote order
func (r *GormSalesInvoiceRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.SalesInvoice, error) {
	var model models.SalesInvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Taxes").
		First(&model, "shopify_order_id = ?", shopifyOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selling.ErrDocumentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds an invoice by its document name
func (r *GormSalesInvoiceRepository) FindByName(ctx context.Context, name string) (*selling.SalesInvoice, error) {
	var model models.SalesInvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Taxes").
		First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selling.ErrDocumentNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an invoice. Tax rows are replaced wholesale: the
// stored rows are deleted and the document's current rows written back, so
// the invoice aggregate stays the single source of truth for them.
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, invoice *selling.SalesInvoice) error {
	model := models.SalesInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SalesInvoiceTaxModel{}, "invoice_id = ?", invoice.ID).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// Ensure GormSalesInvoiceRepository implements SalesInvoiceRepository
var _ selling.SalesInvoiceRepository = (*GormSalesInvoiceRepository)(nil)
