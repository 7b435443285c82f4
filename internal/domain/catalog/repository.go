package catalog

import (
	"context"
)

// ---------------------------------------------------------------------------
// ItemRepository Interface
// ---------------------------------------------------------------------------

// ItemReader defines the lookups the identity resolution machinery depends on.
// Every Find method returns ErrItemNotFound when nothing matched; lookups by
// remote id with a zero id short-circuit to ErrItemNotFound.
type ItemReader interface {
	// FindByCode finds an item by its local item code
	FindByCode(ctx context.Context, code string) (*Item, error)

	// FindByName finds an item by exact display name (case-sensitive)
	FindByName(ctx context.Context, name string) (*Item, error)

	// FindByShopifyProductID finds an item by its stored remote product id
	FindByShopifyProductID(ctx context.Context, productID int64) (*Item, error)

	// FindByShopifyVariantID finds an item by its stored remote variant id
	FindByShopifyVariantID(ctx context.Context, variantID int64) (*Item, error)

	// FindVariantWithAttributes finds the variant of the given template whose
	// resolved attribute values equal the given set on every axis. When more
	// than one variant matches, the one with the lowest item code wins.
	FindVariantWithAttributes(ctx context.Context, templateCode string, values map[string]string) (*Item, error)
}

// ItemWriter defines the persistence operations for items.
type ItemWriter interface {
	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error
}

// ItemRepository defines the full interface for item persistence.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// ---------------------------------------------------------------------------
// Supporting Repositories
// ---------------------------------------------------------------------------

// AttributeRepository persists item attribute definitions.
type AttributeRepository interface {
	// FindByName finds a definition by exact name (case-sensitive).
	// Returns ErrAttributeNotFound when no definition exists.
	FindByName(ctx context.Context, name string) (*ItemAttribute, error)

	// Save creates or updates a definition
	Save(ctx context.Context, attr *ItemAttribute) error
}

// ItemGroupRepository persists item groups.
type ItemGroupRepository interface {
	// Exists reports whether a group with the given name exists
	Exists(ctx context.Context, name string) (bool, error)

	// Save creates or updates a group
	Save(ctx context.Context, group *ItemGroup) error
}

// SupplierRepository persists supplier records.
type SupplierRepository interface {
	// FindByNameOrShopifyID finds a supplier by exact name or by the
	// normalized vendor key. Returns (nil, nil) when nothing matched.
	FindByNameOrShopifyID(ctx context.Context, name, shopifyID string) (*Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
}

// ItemPriceRepository persists price list entries.
type ItemPriceRepository interface {
	// FindByItemAndPriceList finds the entry for an item on a price list.
	// Returns ErrItemNotFound when no entry exists.
	FindByItemAndPriceList(ctx context.Context, itemCode, priceList string) (*ItemPrice, error)

	// Save creates or updates an entry
	Save(ctx context.Context, price *ItemPrice) error
}
