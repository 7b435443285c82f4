package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
)

func testInvoice(t *testing.T, name string, orderID int64) *selling.SalesInvoice {
	t.Helper()
	invoice, err := selling.NewSalesInvoice(name, orderID, "SO-#1001", "USD", decimal.NewFromFloat(100))
	require.NoError(t, err)
	return invoice
}

func TestGormSalesInvoiceRepository_SaveAndFind(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSalesInvoiceRepository(db.DB)
	ctx := context.Background()

	invoice := testInvoice(t, "SINV-#1001", 7001)
	require.NoError(t, invoice.AppendTax(selling.TaxCharge{
		ChargeType:  "Actual",
		AccountHead: "Shopify Fees",
		Description: "charge",
		Amount:      decimal.NewFromFloat(-6.50),
	}))
	require.NoError(t, repo.Save(ctx, invoice))

	found, err := repo.FindByShopifyOrderID(ctx, 7001)
	require.NoError(t, err)
	assert.Equal(t, "SINV-#1001", found.Name)
	assert.Equal(t, "SO-#1001", found.SalesOrder)
	require.Len(t, found.Taxes, 1)
	assert.Equal(t, "Shopify Fees", found.Taxes[0].AccountHead)
	assert.True(t, found.Taxes[0].Amount.Equal(decimal.NewFromFloat(-6.50)))

	found, err = repo.FindByName(ctx, "SINV-#1001")
	require.NoError(t, err)
	assert.Equal(t, int64(7001), found.ShopifyOrderID)
}

func TestGormSalesInvoiceRepository_NotFound(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSalesInvoiceRepository(db.DB)
	ctx := context.Background()

	_, err := repo.FindByShopifyOrderID(ctx, 999)
	assert.ErrorIs(t, err, selling.ErrDocumentNotFound)

	_, err = repo.FindByName(ctx, "SINV-#9999")
	assert.ErrorIs(t, err, selling.ErrDocumentNotFound)
}

func TestGormSalesInvoiceRepository_SaveReplacesTaxes(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSalesInvoiceRepository(db.DB)
	ctx := context.Background()

	invoice := testInvoice(t, "SINV-#1001", 7001)
	require.NoError(t, invoice.AppendTax(selling.TaxCharge{
		ChargeType: "Actual", AccountHead: "Shopify Fees",
		Description: "charge", Amount: decimal.NewFromFloat(-6.50),
	}))
	require.NoError(t, repo.Save(ctx, invoice))

	invoice.Taxes = []selling.TaxCharge{{
		ChargeType: "Actual", AccountHead: "Shopify Fees",
		Description: "refund", Amount: decimal.NewFromFloat(1.20),
	}}
	require.NoError(t, repo.Save(ctx, invoice))

	found, err := repo.FindByName(ctx, "SINV-#1001")
	require.NoError(t, err)
	require.Len(t, found.Taxes, 1)
	assert.Equal(t, "refund", found.Taxes[0].Description)
}

func TestGormSalesInvoiceRepository_SavePersistsStatus(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSalesInvoiceRepository(db.DB)
	ctx := context.Background()

	invoice := testInvoice(t, "SINV-#1001", 7001)
	require.NoError(t, invoice.Submit())
	require.NoError(t, repo.Save(ctx, invoice))

	found, err := repo.FindByName(ctx, "SINV-#1001")
	require.NoError(t, err)
	assert.Equal(t, selling.DocStatusSubmitted, found.Status)
}
