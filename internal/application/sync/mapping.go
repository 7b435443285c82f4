package sync

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// weightUOMMap maps Shopify weight units to local units of measure.
// https://shopify.dev/docs/admin-api/graphql/reference/products-and-collections/weightunit
var weightUOMMap = map[string]string{
	"g":  "Gram",
	"kg": "Kg",
	"oz": "Ounce",
	"lb": "Pound",
}

// weightUOM resolves a Shopify weight unit to a local UOM, or empty when the
// unit is unknown.
func weightUOM(unit string) string {
	return weightUOMMap[unit]
}

// stockUOM resolves the stock unit for an item from its weight unit, falling
// back to the default unit.
func stockUOM(unit string) string {
	if uom := weightUOMMap[unit]; uom != "" {
		return uom
	}
	return catalog.DefaultStockUOM
}

// itemCandidate is the explicit field mapping from a remote payload to a
// local item. Candidates are assembled once per record by the builders below;
// nothing downstream reads the raw payload again.
type itemCandidate struct {
	Code             string
	Name             string
	Description      string
	ShopifyProductID int64
	ShopifyVariantID int64
	Disabled         bool
	HasVariants      bool
	VariantOf        string
	Attributes       []catalog.VariantAttribute
	ItemGroup        string
	StockUOM         string
	SKU              string
	Image            string
	WeightUOM        string
	Weight           decimal.Decimal
	Supplier         string

	// Price carries the price list rate; HasPrice gates the upsert so
	// templates (which are not purchasable) stay unpriced.
	Price    decimal.Decimal
	HasPrice bool
}

// newTemplateCandidate maps a multi-variant product to its template item.
func newTemplateCandidate(product *shopify.Product, axes []catalog.VariantAttribute) *itemCandidate {
	cand := baseCandidate(product)
	cand.HasVariants = true
	cand.Attributes = axes
	return cand
}

// newSimpleCandidate maps a single-variant product to a standalone item. The
// first variant contributes the variant id, sku, weight and price, matching
// how Shopify stores product-level data on the implicit default variant.
func newSimpleCandidate(product *shopify.Product) *itemCandidate {
	cand := baseCandidate(product)
	if first, ok := product.FirstVariant(); ok {
		cand.ShopifyVariantID = first.ID
		if cand.SKU == "" {
			cand.SKU = first.SKU
		}
		cand.Price = first.Price
		cand.HasPrice = true
	}
	return cand
}

// newVariantCandidate maps one remote variant to a variant item under the
// given committed template. Taking the template as a parameter is deliberate:
// it makes the template-before-variants ordering an explicit precondition
// instead of a re-derived lookup that can race the template write.
func newVariantCandidate(product *shopify.Product, variant shopify.Variant, template *catalog.Item, attrs []catalog.VariantAttribute) *itemCandidate {
	code := strconv.FormatInt(variant.ID, 10)
	stock := template.StockUOM
	if stock == "" {
		stock = catalog.DefaultStockUOM
	}
	return &itemCandidate{
		Code:             code,
		Name:             strings.TrimSpace(variant.Title),
		Description:      strings.TrimSpace(variant.Title),
		ShopifyProductID: product.ID,
		ShopifyVariantID: variant.ID,
		Disabled:         product.Status != shopify.ProductStatusActive,
		VariantOf:        template.Code,
		Attributes:       attrs,
		ItemGroup:        template.ItemGroup,
		Supplier:         template.DefaultSupplier,
		StockUOM:         stock,
		SKU:              variant.SKU,
		WeightUOM:        weightUOM(variant.WeightUnit),
		Weight:           variant.Weight,
		Price:            variant.Price,
		HasPrice:         true,
	}
}

// newLineItemCandidate maps an orphaned order line item to a minimal item.
// Only the title and whatever remote ids the line still carries are known.
func newLineItemCandidate(line shopify.LineItem) *itemCandidate {
	title := strings.TrimSpace(line.Title)
	return &itemCandidate{
		Code:             title,
		Name:             title,
		Description:      title,
		ShopifyProductID: line.ProductID,
		ShopifyVariantID: line.VariantID,
		StockUOM:         catalog.DefaultStockUOM,
		Price:            line.Price,
		HasPrice:         true,
	}
}

// baseCandidate maps the product-level fields shared by template and simple
// items. Weight is taken from the first variant, where Shopify reports it.
func baseCandidate(product *shopify.Product) *itemCandidate {
	title := strings.TrimSpace(product.Title)
	description := strings.TrimSpace(product.BodyHTML)
	if description == "" {
		description = title
	}

	cand := &itemCandidate{
		Code:             title,
		Name:             title,
		Description:      description,
		ShopifyProductID: product.ID,
		Disabled:         product.Status != shopify.ProductStatusActive,
		ItemGroup:        product.ProductType,
		SKU:              product.SKU,
		Image:            product.ImageSrc(),
	}

	if first, ok := product.FirstVariant(); ok {
		cand.Weight = first.Weight
		cand.WeightUOM = weightUOM(first.WeightUnit)
		cand.StockUOM = stockUOM(first.WeightUnit)
		if cand.SKU == "" {
			cand.SKU = first.SKU
		}
	} else {
		cand.StockUOM = catalog.DefaultStockUOM
	}

	return cand
}

// hasResolvedAttributes reports whether the candidate carries at least one
// concrete attribute value, which is what makes variant disambiguation
// possible.
func (c *itemCandidate) hasResolvedAttributes() bool {
	for _, attr := range c.Attributes {
		if attr.Value != "" {
			return true
		}
	}
	return false
}

// attributeValueSet returns the candidate's resolved values keyed by axis.
func (c *itemCandidate) attributeValueSet() map[string]string {
	set := make(map[string]string, len(c.Attributes))
	for _, attr := range c.Attributes {
		if attr.Value != "" {
			set[attr.Attribute] = attr.Value
		}
	}
	return set
}

// newItem materializes a fresh item from the candidate.
func (c *itemCandidate) newItem() *catalog.Item {
	now := time.Now()
	item := &catalog.Item{
		Code:      c.Code,
		CreatedAt: now,
	}
	c.apply(item)
	return item
}

// apply copies the candidate's fields onto an item, field by field. The item
// code is the local identity and is never overwritten; user-authored local
// extensions live outside these fields and survive the update untouched.
func (c *itemCandidate) apply(item *catalog.Item) {
	item.Name = c.Name
	item.Description = c.Description
	item.ShopifyProductID = c.ShopifyProductID
	item.ShopifyVariantID = c.ShopifyVariantID
	item.DisabledOnShopify = c.Disabled
	item.HasVariants = c.HasVariants
	item.VariantOf = c.VariantOf
	item.Attributes = c.Attributes
	item.ItemGroup = c.ItemGroup
	item.StockUOM = c.StockUOM
	item.SKU = c.SKU
	item.Image = c.Image
	item.WeightUOM = c.WeightUOM
	item.WeightPerUnit = c.Weight
	item.DefaultSupplier = c.Supplier
	item.UpdatedAt = time.Now()
}
