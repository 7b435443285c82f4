package shopify

import (
	"github.com/shopspring/decimal"
)

// MaxOptionSlots is the number of variant option slots Shopify supports per product.
const MaxOptionSlots = 3

// DefaultTitleValue is the placeholder option value Shopify assigns to products
// that have no real variant axes.
const DefaultTitleValue = "Default Title"

// ProductStatus represents the listing status of a product on Shopify.
type ProductStatus string

const (
	// ProductStatusActive indicates the product is published and purchasable
	ProductStatusActive ProductStatus = "active"
	// ProductStatusDraft indicates the product is not yet published
	ProductStatusDraft ProductStatus = "draft"
	// ProductStatusArchived indicates the product has been archived
	ProductStatusArchived ProductStatus = "archived"
)

// ProductOption represents one variant axis of a product (e.g. Size, Color).
// Options are positional: option N on the product corresponds to optionN on
// each of its variants.
type ProductOption struct {
	// Name is the axis name (e.g. "Size")
	Name string
	// Position is the 1-indexed slot of this axis on the product
	Position int
	// Values contains the declared values for this axis, in Shopify order
	Values []string
}

// Variant represents a purchasable variant of a Shopify product.
type Variant struct {
	// ID is the variant ID on Shopify
	ID int64
	// ProductID is the parent product ID on Shopify
	ProductID int64
	// Title is the variant title (usually the joined option values)
	Title string
	// SKU is the merchant-assigned stock keeping unit
	SKU string
	// Price is the variant's selling price
	Price decimal.Decimal
	// Options holds the per-axis option values (slot 0..2, empty when unused)
	Options [MaxOptionSlots]string
	// Weight is the variant weight, in WeightUnit
	Weight decimal.Decimal
	// WeightUnit is one of g, kg, oz, lb
	WeightUnit string
	// Position is the 1-indexed position within the product
	Position int
}

// OptionValue returns the option value for slot (0-indexed). Slots outside
// the supported range report an empty value.
func (v Variant) OptionValue(slot int) string {
	if slot < 0 || slot >= MaxOptionSlots {
		return ""
	}
	return v.Options[slot]
}

// Image represents a product image on Shopify.
type Image struct {
	// Src is the image URL
	Src string
}

// Product represents a product payload pulled from Shopify. It is a read-only
// snapshot: the source of truth stays on the platform and the payload is never
// mutated locally.
type Product struct {
	// ID is the product ID on Shopify
	ID int64
	// Title is the product title
	Title string
	// BodyHTML is the product description markup
	BodyHTML string
	// Vendor is the merchant-declared vendor name
	Vendor string
	// ProductType is the merchant-declared product type
	ProductType string
	// Status is the listing status
	Status ProductStatus
	// Options contains the variant axes, in slot order
	Options []ProductOption
	// Variants contains the product's variants
	Variants []Variant
	// Image is the primary product image, if any
	Image *Image
	// SKU is the product-level stock keeping unit, if any
	SKU string
}

// HasVariantAxes reports whether the product carries real variant axes.
// Shopify assigns every product a single "Default Title" option value when the
// merchant defined no variants, so only other values count.
func (p Product) HasVariantAxes() bool {
	if len(p.Options) == 0 {
		return false
	}
	for _, value := range p.Options[0].Values {
		if value == DefaultTitleValue {
			return false
		}
	}
	return len(p.Options[0].Values) > 0
}

// FirstVariant returns the first variant of the product, if any. Simple
// products still carry exactly one variant on Shopify, which holds the
// product's price, weight and SKU.
func (p Product) FirstVariant() (Variant, bool) {
	if len(p.Variants) == 0 {
		return Variant{}, false
	}
	return p.Variants[0], true
}

// ImageSrc returns the primary image URL, or empty when the product has none.
func (p Product) ImageSrc() string {
	if p.Image == nil {
		return ""
	}
	return p.Image.Src
}
