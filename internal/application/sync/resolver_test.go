package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

func TestIdentityResolver_Resolve_ByVariantID(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	want := &catalog.Item{Code: "501", ShopifyVariantID: 501}
	mockItems.On("FindByShopifyVariantID", ctx, int64(501)).Return(want, nil)

	item, err := resolver.Resolve(ctx, 100, 501, "Blue Shirt")

	assert.NoError(t, err)
	assert.Equal(t, want, item)
	mockItems.AssertNotCalled(t, "FindByShopifyProductID", ctx, int64(100))
	mockItems.AssertNotCalled(t, "FindByName", ctx, "Blue Shirt")
}

func TestIdentityResolver_Resolve_FallsBackToProductID(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	want := &catalog.Item{Code: "Blue Shirt", ShopifyProductID: 100}
	mockItems.On("FindByShopifyVariantID", ctx, int64(501)).Return(nil, catalog.ErrItemNotFound)
	mockItems.On("FindByShopifyProductID", ctx, int64(100)).Return(want, nil)

	item, err := resolver.Resolve(ctx, 100, 501, "Blue Shirt")

	assert.NoError(t, err)
	assert.Equal(t, want, item)
}

func TestIdentityResolver_Resolve_FallsBackToTitle(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	want := &catalog.Item{Code: "Blue Shirt", Name: "Blue Shirt"}
	mockItems.On("FindByShopifyVariantID", ctx, int64(501)).Return(nil, catalog.ErrItemNotFound)
	mockItems.On("FindByShopifyProductID", ctx, int64(100)).Return(nil, catalog.ErrItemNotFound)
	mockItems.On("FindByName", ctx, "Blue Shirt").Return(want, nil)

	item, err := resolver.Resolve(ctx, 100, 501, "Blue Shirt")

	assert.NoError(t, err)
	assert.Equal(t, want, item)
}

func TestIdentityResolver_Resolve_Unresolvable(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	mockItems.On("FindByShopifyVariantID", ctx, int64(501)).Return(nil, catalog.ErrItemNotFound)
	mockItems.On("FindByShopifyProductID", ctx, int64(100)).Return(nil, catalog.ErrItemNotFound)
	mockItems.On("FindByName", ctx, "Blue Shirt").Return(nil, catalog.ErrItemNotFound)

	item, err := resolver.Resolve(ctx, 100, 501, "Blue Shirt")

	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestIdentityResolver_Resolve_SkipsZeroKeys(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	item, err := resolver.Resolve(ctx, 0, 0, "")

	assert.NoError(t, err)
	assert.Nil(t, item)
	mockItems.AssertNotCalled(t, "FindByShopifyVariantID")
	mockItems.AssertNotCalled(t, "FindByShopifyProductID")
	mockItems.AssertNotCalled(t, "FindByName")
}

func TestIdentityResolver_Resolve_PropagatesLookupError(t *testing.T) {
	mockItems := new(MockItemRepository)
	resolver := NewIdentityResolver(mockItems)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	mockItems.On("FindByShopifyVariantID", ctx, int64(501)).Return(nil, dbErr)

	item, err := resolver.Resolve(ctx, 100, 501, "Blue Shirt")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, item)
	mockItems.AssertNotCalled(t, "FindByShopifyProductID", ctx, int64(100))
}
