package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence/models"
)

// GormItemGroupRepository implements catalog.ItemGroupRepository using GORM
type GormItemGroupRepository struct {
	db *gorm.DB
}

// NewGormItemGroupRepository creates a new GormItemGroupRepository
func NewGormItemGroupRepository(db *gorm.DB) *GormItemGroupRepository {
	return &GormItemGroupRepository{db: db}
}

// Exists checks if an item group with the given name exists
func (r *GormItemGroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ItemGroupModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an item group
func (r *GormItemGroupRepository) Save(ctx context.Context, group *catalog.ItemGroup) error {
	model := &models.ItemGroupModel{}
	model.FromDomain(group)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormItemGroupRepository implements ItemGroupRepository
var _ catalog.ItemGroupRepository = (*GormItemGroupRepository)(nil)
