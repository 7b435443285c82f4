package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormAttributeRepository implements catalog.AttributeRepository using GORM
type GormAttributeRepository struct {
	db *gorm.DB
}

// NewGormAttributeRepository creates a new GormAttributeRepository
func NewGormAttributeRepository(db *gorm.DB) *GormAttributeRepository {
	return &GormAttributeRepository{db: db}
}

// FindByName finds an attribute definition by name
func (r *GormAttributeRepository) FindByName(ctx context.Context, name string) (*catalog.ItemAttribute, error) {
	var model models.ItemAttributeModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAttributeNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Save creates or updates an attribute definition
func (r *GormAttributeRepository) Save(ctx context.Context, attr *catalog.ItemAttribute) error {
	model, err := models.ItemAttributeModelFromDomain(attr)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormAttributeRepository implements AttributeRepository
var _ catalog.AttributeRepository = (*GormAttributeRepository)(nil)
