package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

func TestMergeEngine_Decide_NoMatch_Create(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	mockItems.On("FindByName", ctx, "Blue Shirt").Return(nil, catalog.ErrItemNotFound)

	cand := &itemCandidate{Name: "Blue Shirt", ShopifyProductID: 100}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionCreate, decision.Action)
	assert.Nil(t, decision.Target)
}

func TestMergeEngine_Decide_NameMatchUnlinked_AttachIDs(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	local := &catalog.Item{Code: "Blue Shirt", Name: "Blue Shirt"}
	mockItems.On("FindByName", ctx, "Blue Shirt").Return(local, nil)

	cand := &itemCandidate{Name: "Blue Shirt", ShopifyProductID: 100}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionAttachIDs, decision.Action)
	assert.Equal(t, local, decision.Target)
}

func TestMergeEngine_Decide_LinkedWithAttributes_LinkVariant(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	template := &catalog.Item{Code: "Shirt", Name: "Shirt", HasVariants: true, ShopifyProductID: 100}
	variant := &catalog.Item{Code: "501", VariantOf: "Shirt", Attributes: []catalog.VariantAttribute{
		{Attribute: "Size", Value: "Small"},
	}}
	mockItems.On("FindByCode", ctx, "Shirt").Return(template, nil)
	mockItems.On("FindVariantWithAttributes", ctx, "Shirt", map[string]string{"Size": "Small"}).Return(variant, nil)

	cand := &itemCandidate{
		Name:             "Small",
		ShopifyProductID: 100,
		ShopifyVariantID: 501,
		VariantOf:        "Shirt",
		Attributes:       []catalog.VariantAttribute{{Attribute: "Size", Value: "Small"}},
	}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionLinkVariant, decision.Action)
	assert.Equal(t, variant, decision.Target)
}

func TestMergeEngine_Decide_NoVariantWithAttributes_Create(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	template := &catalog.Item{Code: "Shirt", Name: "Shirt", HasVariants: true, ShopifyProductID: 100}
	mockItems.On("FindByCode", ctx, "Shirt").Return(template, nil)
	mockItems.On("FindVariantWithAttributes", ctx, "Shirt", map[string]string{"Size": "Large"}).
		Return(nil, catalog.ErrItemNotFound)

	cand := &itemCandidate{
		Name:             "Large",
		ShopifyProductID: 100,
		ShopifyVariantID: 502,
		VariantOf:        "Shirt",
		Attributes:       []catalog.VariantAttribute{{Attribute: "Size", Value: "Large"}},
	}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionCreate, decision.Action)
}

func TestMergeEngine_Decide_ProductIDMismatch_Create(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	local := &catalog.Item{Code: "Blue Shirt", Name: "Blue Shirt", ShopifyProductID: 999}
	mockItems.On("FindByName", ctx, "Blue Shirt").Return(local, nil)

	cand := &itemCandidate{Name: "Blue Shirt", ShopifyProductID: 100}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionCreate, decision.Action)
}

func TestMergeEngine_Decide_AlreadyLinked_Skip(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	local := &catalog.Item{Code: "Blue Shirt", Name: "Blue Shirt", ShopifyProductID: 100}
	mockItems.On("FindByName", ctx, "Blue Shirt").Return(local, nil)

	cand := &itemCandidate{Name: "Blue Shirt", ShopifyProductID: 100}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionSkip, decision.Action)
	assert.Equal(t, local, decision.Target)
}

func TestMergeEngine_Decide_VariantCandidate_AnchorsOnTemplate(t *testing.T) {
	mockItems := new(MockItemRepository)
	engine := NewMergeEngine(mockItems)
	ctx := context.Background()

	mockItems.On("FindByCode", ctx, "Shirt").Return(nil, catalog.ErrItemNotFound)

	cand := &itemCandidate{Name: "Small", VariantOf: "Shirt", ShopifyProductID: 100}
	decision, err := engine.Decide(ctx, cand)

	require.NoError(t, err)
	assert.Equal(t, MergeActionCreate, decision.Action)
	mockItems.AssertNotCalled(t, "FindByName", ctx, "Small")
}
