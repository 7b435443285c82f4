package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

// ItemModel is the persistence model for the Item domain entity. The item
// code is the primary key; variant attribute rows are stored denormalized as
// JSON because they are only ever read back whole.
type ItemModel struct {
	Code              string          `gorm:"type:varchar(140);primaryKey"`
	Name              string          `gorm:"type:varchar(200);not null;index"`
	Description       string          `gorm:"type:text"`
	ShopifyProductID  int64           `gorm:"index"`
	ShopifyVariantID  int64           `gorm:"index"`
	DisabledOnShopify bool            `gorm:"not null;default:false"`
	HasVariants       bool            `gorm:"not null;default:false"`
	VariantOf         string          `gorm:"type:varchar(140);index"`
	Attributes        string          `gorm:"type:text"`
	ItemGroup         string          `gorm:"type:varchar(140)"`
	StockUOM          string          `gorm:"type:varchar(50);not null"`
	SKU               string          `gorm:"type:varchar(140)"`
	Image             string          `gorm:"type:text"`
	WeightUOM         string          `gorm:"type:varchar(50)"`
	WeightPerUnit     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DefaultSupplier   string          `gorm:"type:varchar(140)"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() (*catalog.Item, error) {
	var attrs []catalog.VariantAttribute
	if m.Attributes != "" {
		if err := json.Unmarshal([]byte(m.Attributes), &attrs); err != nil {
			return nil, err
		}
	}
	return &catalog.Item{
		Code:              m.Code,
		Name:              m.Name,
		Description:       m.Description,
		ShopifyProductID:  m.ShopifyProductID,
		ShopifyVariantID:  m.ShopifyVariantID,
		DisabledOnShopify: m.DisabledOnShopify,
		HasVariants:       m.HasVariants,
		VariantOf:         m.VariantOf,
		Attributes:        attrs,
		ItemGroup:         m.ItemGroup,
		StockUOM:          m.StockUOM,
		SKU:               m.SKU,
		Image:             m.Image,
		WeightUOM:         m.WeightUOM,
		WeightPerUnit:     m.WeightPerUnit,
		DefaultSupplier:   m.DefaultSupplier,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}, nil
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(item *catalog.Item) error {
	attrs := "[]"
	if len(item.Attributes) > 0 {
		data, err := json.Marshal(item.Attributes)
		if err != nil {
			return err
		}
		attrs = string(data)
	}
	m.Code = item.Code
	m.Name = item.Name
	m.Description = item.Description
	m.ShopifyProductID = item.ShopifyProductID
	m.ShopifyVariantID = item.ShopifyVariantID
	m.DisabledOnShopify = item.DisabledOnShopify
	m.HasVariants = item.HasVariants
	m.VariantOf = item.VariantOf
	m.Attributes = attrs
	m.ItemGroup = item.ItemGroup
	m.StockUOM = item.StockUOM
	m.SKU = item.SKU
	m.Image = item.Image
	m.WeightUOM = item.WeightUOM
	m.WeightPerUnit = item.WeightPerUnit
	m.DefaultSupplier = item.DefaultSupplier
	m.CreatedAt = item.CreatedAt
	m.UpdatedAt = item.UpdatedAt
	return nil
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(item *catalog.Item) (*ItemModel, error) {
	m := &ItemModel{}
	if err := m.FromDomain(item); err != nil {
		return nil, err
	}
	return m, nil
}

// ItemAttributeModel is the persistence model for the ItemAttribute entity.
// Discrete values are stored as JSON pairs; numeric definitions carry the
// range fields and an empty value list.
type ItemAttributeModel struct {
	Name          string          `gorm:"type:varchar(140);primaryKey"`
	NumericValues bool            `gorm:"not null;default:false"`
	FromRange     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ToRange       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Increment     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Values        string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemAttributeModel) TableName() string {
	return "item_attributes"
}

// ToDomain converts the persistence model to a domain ItemAttribute entity.
func (m *ItemAttributeModel) ToDomain() (*catalog.ItemAttribute, error) {
	var values []catalog.AttributeValue
	if m.Values != "" {
		if err := json.Unmarshal([]byte(m.Values), &values); err != nil {
			return nil, err
		}
	}
	return &catalog.ItemAttribute{
		Name:          m.Name,
		NumericValues: m.NumericValues,
		FromRange:     m.FromRange,
		ToRange:       m.ToRange,
		Increment:     m.Increment,
		Values:        values,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// FromDomain populates the persistence model from a domain ItemAttribute entity.
func (m *ItemAttributeModel) FromDomain(attr *catalog.ItemAttribute) error {
	values := "[]"
	if len(attr.Values) > 0 {
		data, err := json.Marshal(attr.Values)
		if err != nil {
			return err
		}
		values = string(data)
	}
	m.Name = attr.Name
	m.NumericValues = attr.NumericValues
	m.FromRange = attr.FromRange
	m.ToRange = attr.ToRange
	m.Increment = attr.Increment
	m.Values = values
	m.CreatedAt = attr.CreatedAt
	m.UpdatedAt = attr.UpdatedAt
	return nil
}

// ItemAttributeModelFromDomain creates a new persistence model from a domain ItemAttribute entity.
func ItemAttributeModelFromDomain(attr *catalog.ItemAttribute) (*ItemAttributeModel, error) {
	m := &ItemAttributeModel{}
	if err := m.FromDomain(attr); err != nil {
		return nil, err
	}
	return m, nil
}

// ItemGroupModel is the persistence model for the ItemGroup entity.
type ItemGroupModel struct {
	Name        string    `gorm:"type:varchar(140);primaryKey"`
	ParentGroup string    `gorm:"type:varchar(140);index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemGroupModel) TableName() string {
	return "item_groups"
}

// ToDomain converts the persistence model to a domain ItemGroup entity.
func (m *ItemGroupModel) ToDomain() *catalog.ItemGroup {
	return &catalog.ItemGroup{
		Name:        m.Name,
		ParentGroup: m.ParentGroup,
	}
}

// FromDomain populates the persistence model from a domain ItemGroup entity.
func (m *ItemGroupModel) FromDomain(g *catalog.ItemGroup) {
	m.Name = g.Name
	m.ParentGroup = g.ParentGroup
}

// SupplierModel is the persistence model for the Supplier entity.
type SupplierModel struct {
	Name              string    `gorm:"type:varchar(140);primaryKey"`
	ShopifySupplierID string    `gorm:"type:varchar(140);index"`
	SupplierGroup     string    `gorm:"type:varchar(140)"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *catalog.Supplier {
	return &catalog.Supplier{
		Name:              m.Name,
		ShopifySupplierID: m.ShopifySupplierID,
		SupplierGroup:     m.SupplierGroup,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *catalog.Supplier) {
	m.Name = s.Name
	m.ShopifySupplierID = s.ShopifySupplierID
	m.SupplierGroup = s.SupplierGroup
}

// ItemPriceModel is the persistence model for the ItemPrice entity.
type ItemPriceModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	ItemCode  string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_item_price_list,priority:1"`
	PriceList string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_item_price_list,priority:2"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemPriceModel) TableName() string {
	return "item_prices"
}

// ToDomain converts the persistence model to a domain ItemPrice entity.
func (m *ItemPriceModel) ToDomain() *catalog.ItemPrice {
	return &catalog.ItemPrice{
		ItemCode:  m.ItemCode,
		PriceList: m.PriceList,
		Rate:      m.Rate,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain ItemPrice entity.
func (m *ItemPriceModel) FromDomain(p *catalog.ItemPrice) {
	m.ItemCode = p.ItemCode
	m.PriceList = p.PriceList
	m.Rate = p.Rate
	m.UpdatedAt = p.UpdatedAt
}
