package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

func TestGormItemPriceRepository_SaveAndFind(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormItemPriceRepository(db.DB)
	ctx := context.Background()

	price := &catalog.ItemPrice{
		ItemCode:  "Blue Shirt",
		PriceList: "Standard Selling",
		Rate:      decimal.NewFromFloat(19.99),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, price))

	found, err := repo.FindByItemAndPriceList(ctx, "Blue Shirt", "Standard Selling")
	require.NoError(t, err)
	assert.True(t, found.Rate.Equal(decimal.NewFromFloat(19.99)))
}

func TestGormItemPriceRepository_NotFound(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormItemPriceRepository(db.DB)

	_, err := repo.FindByItemAndPriceList(context.Background(), "Missing", "Standard Selling")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestGormItemPriceRepository_SaveIsUpsert(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormItemPriceRepository(db.DB)
	ctx := context.Background()

	price := &catalog.ItemPrice{
		ItemCode:  "Blue Shirt",
		PriceList: "Standard Selling",
		Rate:      decimal.NewFromFloat(19.99),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, price))

	price.Rate = decimal.NewFromFloat(24.99)
	require.NoError(t, repo.Save(ctx, price))

	found, err := repo.FindByItemAndPriceList(ctx, "Blue Shirt", "Standard Selling")
	require.NoError(t, err)
	assert.True(t, found.Rate.Equal(decimal.NewFromFloat(24.99)))
}
