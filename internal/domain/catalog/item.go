package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemInvalidCode indicates an empty item code
	ErrItemInvalidCode = errors.New("catalog: invalid item code")
	// ErrItemInvalidName indicates an empty item name
	ErrItemInvalidName = errors.New("catalog: invalid item name")
	// ErrItemInvalidShape indicates an inconsistent template/variant flag combination
	ErrItemInvalidShape = errors.New("catalog: item cannot be both template and variant")
	// ErrItemNotFound indicates no item matched the lookup
	ErrItemNotFound = errors.New("catalog: item not found")
)

// DefaultStockUOM is the fallback stock unit of measure for items whose
// platform payload carries no usable weight unit.
const DefaultStockUOM = "Nos"

// VariantAttribute is one attribute row attached to an item. On template
// items the row names the axis only; on variant items it additionally carries
// the resolved concrete value. Numeric-range axes copy the range descriptor
// instead of a value list.
type VariantAttribute struct {
	// Attribute is the ItemAttribute definition name
	Attribute string
	// Value is the resolved concrete value (empty on template rows)
	Value string
	// NumericValues marks the axis as numeric-range mode
	NumericValues bool
	// FromRange is the numeric-range lower bound
	FromRange decimal.Decimal
	// ToRange is the numeric-range upper bound
	ToRange decimal.Decimal
	// Increment is the numeric-range step size
	Increment decimal.Decimal
}

// Item is a local catalog record. Exactly one of three shapes holds: a
// template (HasVariants set, no parent), a variant leaf (parent set, no
// HasVariants), or a simple item (neither).
type Item struct {
	// Code is the item's local identity key
	Code string
	// Name is the display name, matched against remote titles
	Name string
	// Description is the item description
	Description string
	// ShopifyProductID links the item to a remote product (0 when unlinked)
	ShopifyProductID int64
	// ShopifyVariantID links the item to a remote variant (0 when unlinked)
	ShopifyVariantID int64
	// DisabledOnShopify mirrors the remote listing state
	DisabledOnShopify bool
	// HasVariants marks the item as a template aggregating variants
	HasVariants bool
	// VariantOf is the parent template's item code (empty unless variant)
	VariantOf string
	// Attributes holds the item's attribute rows, in axis slot order
	Attributes []VariantAttribute
	// ItemGroup is the local item group name
	ItemGroup string
	// StockUOM is the stock unit of measure
	StockUOM string
	// SKU is the stock keeping unit from the platform
	SKU string
	// Image is the primary image URL
	Image string
	// WeightUOM is the weight unit of measure
	WeightUOM string
	// WeightPerUnit is the per-unit weight
	WeightPerUnit decimal.Decimal
	// DefaultSupplier is the supplier record name, if resolved
	DefaultSupplier string
	// CreatedAt is when the item was created
	CreatedAt time.Time
	// UpdatedAt is when the item was last updated
	UpdatedAt time.Time
}

// Validate checks the item's structural invariants.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return ErrItemInvalidCode
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrItemInvalidName
	}
	if i.HasVariants && i.VariantOf != "" {
		return ErrItemInvalidShape
	}
	return nil
}

// IsTemplate reports whether the item aggregates variants.
func (i *Item) IsTemplate() bool {
	return i.HasVariants && i.VariantOf == ""
}

// IsVariant reports whether the item is a variant leaf under a template.
func (i *Item) IsVariant() bool {
	return !i.HasVariants && i.VariantOf != ""
}

// IsSimple reports whether the item is a standalone product.
func (i *Item) IsSimple() bool {
	return !i.HasVariants && i.VariantOf == ""
}

// IsLinked reports whether the item already carries a remote product link.
func (i *Item) IsLinked() bool {
	return i.ShopifyProductID != 0
}

// LinkShopifyIDs attaches remote identifiers to the item.
func (i *Item) LinkShopifyIDs(productID, variantID int64) {
	i.ShopifyProductID = productID
	i.ShopifyVariantID = variantID
	i.UpdatedAt = time.Now()
}

// AttributeValueSet returns the item's resolved attribute values keyed by
// axis name. Rows without a concrete value are excluded.
func (i *Item) AttributeValueSet() map[string]string {
	set := make(map[string]string, len(i.Attributes))
	for _, attr := range i.Attributes {
		if attr.Value != "" {
			set[attr.Attribute] = attr.Value
		}
	}
	return set
}

// MatchesAttributeValues reports whether the item's resolved values equal the
// given set on every axis (conjunctive full-set match).
func (i *Item) MatchesAttributeValues(want map[string]string) bool {
	have := i.AttributeValueSet()
	if len(have) != len(want) {
		return false
	}
	for axis, value := range want {
		if have[axis] != value {
			return false
		}
	}
	return true
}

// ItemGroup is a named grouping of items, created on demand from the
// platform's product type.
type ItemGroup struct {
	// Name is the group's identity
	Name string
	// ParentGroup is the parent group name (root group for new entries)
	ParentGroup string
	// IsGroup marks the entry as a grouping node rather than a leaf
	IsGroup bool
}

// Supplier is a minimal supplier record, created on demand from the
// platform's vendor field.
type Supplier struct {
	// Name is the supplier's identity
	Name string
	// ShopifySupplierID is the normalized (lowercased) vendor key
	ShopifySupplierID string
	// SupplierGroup is the supplier group name
	SupplierGroup string
}

// ItemPrice is a price list entry for an item.
type ItemPrice struct {
	// ItemCode references the priced item
	ItemCode string
	// PriceList is the price list name
	PriceList string
	// Rate is the price list rate
	Rate decimal.Decimal
	// UpdatedAt is when the entry was last updated
	UpdatedAt time.Time
}
