package sync

import (
	"context"
	"errors"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

// IdentityResolver decides which local item, if any, a remote reference maps
// to. Matching is deliberately exact: a silent near-match is worse than a
// duplicate a human can merge later, so no fuzzy comparison is ever applied.
type IdentityResolver struct {
	items catalog.ItemReader
}

// NewIdentityResolver creates a new IdentityResolver.
func NewIdentityResolver(items catalog.ItemReader) *IdentityResolver {
	return &IdentityResolver{items: items}
}

// Resolve finds the local item for a remote reference, trying the stored
// remote variant id, then the stored remote product id, then the exact
// display name, in that order. An unresolvable reference returns (nil, nil):
// Shopify allows orders to reference products and variants that were never
// synced, and the caller falls back to item creation on demand.
func (r *IdentityResolver) Resolve(ctx context.Context, productID, variantID int64, title string) (*catalog.Item, error) {
	if variantID != 0 {
		item, err := r.items.FindByShopifyVariantID(ctx, variantID)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, catalog.ErrItemNotFound) {
			return nil, err
		}
	}

	if productID != 0 {
		item, err := r.items.FindByShopifyProductID(ctx, productID)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, catalog.ErrItemNotFound) {
			return nil, err
		}
	}

	if title != "" {
		item, err := r.items.FindByName(ctx, title)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, catalog.ErrItemNotFound) {
			return nil, err
		}
	}

	return nil, nil
}
