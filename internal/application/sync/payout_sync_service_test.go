package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

type payoutSyncMocks struct {
	client     *MockPayoutClient
	payouts    *MockPayoutRepository
	orders     *MockSalesOrderRepository
	invoices   *MockSalesInvoiceRepository
	deliveries *MockDeliveryNoteRepository
	settings   *MockSettingsStore
	items      *MockItemRepository
}

func newTestPayoutSync(cfg PayoutSyncConfig) (*PayoutSyncService, *payoutSyncMocks) {
	products, pm := newTestProductSync(ProductSyncConfig{ItemGroup: "Products"})
	m := &payoutSyncMocks{
		client:     new(MockPayoutClient),
		payouts:    new(MockPayoutRepository),
		orders:     new(MockSalesOrderRepository),
		invoices:   new(MockSalesInvoiceRepository),
		deliveries: new(MockDeliveryNoteRepository),
		settings:   new(MockSettingsStore),
		items:      pm.items,
	}
	service := NewPayoutSyncService(
		m.client, m.payouts, m.orders, m.invoices, m.deliveries,
		products, m.settings, noopAudit{}, cfg, zap.NewNop(),
	)
	return service, m
}

func testPayout(id int64) shopify.Payout {
	return shopify.Payout{
		ID:       id,
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:   "paid",
		Currency: "USD",
		Amount:   decimal.NewFromFloat(93.50),
	}
}

func TestPayoutSyncService_SyncPayouts_SkipsRecordedPayout(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	m.settings.On("LastPayoutSync", ctx).Return(nil, nil)
	m.client.On("ListPayoutsSince", ctx, (*time.Time)(nil)).Return([]shopify.Payout{testPayout(7000)}, nil)
	m.payouts.On("ExistsByPayoutID", ctx, int64(7000)).Return(true, nil)
	m.settings.On("SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time")).Return(nil)

	err := service.SyncPayouts(ctx)

	require.NoError(t, err)
	m.client.AssertNotCalled(t, "ListTransactions", ctx, int64(7000))
	m.payouts.AssertNotCalled(t, "Save", ctx, mock.Anything)
}

func TestPayoutSyncService_SyncPayouts_RecordsAndFoldsFees(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	fee := decimal.NewFromFloat(1.50)
	transactions := []shopify.Transaction{
		{
			ID:            1,
			PayoutID:      7000,
			Type:          shopify.TransactionTypeCharge,
			Amount:        decimal.NewFromInt(100),
			Fee:           fee,
			Net:           decimal.NewFromFloat(98.50),
			Currency:      "USD",
			SourceOrderID: 9000,
		},
		{
			ID:       2,
			PayoutID: 7000,
			Type:     shopify.TransactionTypePayout,
			Amount:   decimal.NewFromFloat(93.50),
			Net:      decimal.NewFromFloat(93.50),
			Currency: "USD",
		},
	}

	order := &shopify.Order{ID: 9000, Name: "#1001", FinancialStatus: "paid", Currency: "USD", TotalPrice: decimal.NewFromInt(100)}
	so, err := selling.NewSalesOrder("SO-#1001", 9000, "USD", order.TotalPrice)
	require.NoError(t, err)
	invoice, err := selling.NewSalesInvoice("SINV-#1001", 9000, so.Name, "USD", order.TotalPrice)
	require.NoError(t, err)
	note, err := selling.NewDeliveryNote("DN-#1001", 9000, so.Name)
	require.NoError(t, err)

	m.settings.On("LastPayoutSync", ctx).Return(nil, nil)
	m.client.On("ListPayoutsSince", ctx, (*time.Time)(nil)).Return([]shopify.Payout{testPayout(7000)}, nil)
	m.payouts.On("ExistsByPayoutID", ctx, int64(7000)).Return(false, nil)
	m.client.On("ListTransactions", ctx, int64(7000)).Return(transactions, nil)
	m.client.On("GetOrder", ctx, int64(9000)).Return(order, nil)

	// The order's documents already exist, so backfill finds them and the
	// record build links them by name.
	m.orders.On("FindByShopifyOrderID", ctx, int64(9000)).Return(so, nil)
	m.invoices.On("FindByShopifyOrderID", ctx, int64(9000)).Return(invoice, nil)
	m.deliveries.On("FindByShopifyOrderID", ctx, int64(9000)).Return(note, nil)

	var record *selling.Payout
	m.payouts.On("Save", ctx, mock.AnythingOfType("*selling.Payout")).Run(func(args mock.Arguments) {
		record = args.Get(1).(*selling.Payout)
	}).Return(nil)

	m.invoices.On("FindByName", ctx, "SINV-#1001").Return(invoice, nil)
	m.invoices.On("Save", ctx, invoice).Return(nil)
	m.settings.On("SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time")).Return(nil)

	err = service.SyncPayouts(ctx)

	require.NoError(t, err)
	require.NotNil(t, record)
	require.Len(t, record.Transactions, 2)

	charge := record.Transactions[0]
	assert.True(t, charge.TotalAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, charge.Fee.Equal(fee))
	assert.Equal(t, "SO-#1001", charge.SalesOrder)
	assert.Equal(t, "SINV-#1001", charge.SalesInvoice)
	assert.Equal(t, "DN-#1001", charge.DeliveryNote)
	assert.Equal(t, "paid", charge.SourceOrderFinancialStatus)

	disbursement := record.Transactions[1]
	assert.True(t, disbursement.TotalAmount.Equal(decimal.NewFromFloat(-93.50)))
	assert.True(t, disbursement.NetAmount.Equal(decimal.NewFromFloat(-93.50)))

	// Fee folded into the draft invoice as a negative charge, then submitted.
	require.Len(t, invoice.Taxes, 1)
	assert.Equal(t, "Actual", invoice.Taxes[0].ChargeType)
	assert.Equal(t, "Shopify Fees", invoice.Taxes[0].AccountHead)
	assert.Equal(t, "charge", invoice.Taxes[0].Description)
	assert.True(t, invoice.Taxes[0].Amount.Equal(fee.Neg()))
	assert.Equal(t, selling.DocStatusSubmitted, invoice.Status)
}

func TestPayoutSyncService_SyncPayouts_SubmittedInvoiceUntouched(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	transactions := []shopify.Transaction{
		{
			ID:            1,
			PayoutID:      7000,
			Type:          shopify.TransactionTypeCharge,
			Amount:        decimal.NewFromInt(100),
			Fee:           decimal.NewFromFloat(1.50),
			Net:           decimal.NewFromFloat(98.50),
			SourceOrderID: 9000,
		},
	}

	order := &shopify.Order{ID: 9000, Name: "#1001", FinancialStatus: "paid", Currency: "USD", TotalPrice: decimal.NewFromInt(100)}
	so, err := selling.NewSalesOrder("SO-#1001", 9000, "USD", order.TotalPrice)
	require.NoError(t, err)
	invoice, err := selling.NewSalesInvoice("SINV-#1001", 9000, so.Name, "USD", order.TotalPrice)
	require.NoError(t, err)
	require.NoError(t, invoice.Submit())
	note, err := selling.NewDeliveryNote("DN-#1001", 9000, so.Name)
	require.NoError(t, err)

	m.settings.On("LastPayoutSync", ctx).Return(nil, nil)
	m.client.On("ListPayoutsSince", ctx, (*time.Time)(nil)).Return([]shopify.Payout{testPayout(7000)}, nil)
	m.payouts.On("ExistsByPayoutID", ctx, int64(7000)).Return(false, nil)
	m.client.On("ListTransactions", ctx, int64(7000)).Return(transactions, nil)
	m.client.On("GetOrder", ctx, int64(9000)).Return(order, nil)
	m.orders.On("FindByShopifyOrderID", ctx, int64(9000)).Return(so, nil)
	m.invoices.On("FindByShopifyOrderID", ctx, int64(9000)).Return(invoice, nil)
	m.deliveries.On("FindByShopifyOrderID", ctx, int64(9000)).Return(note, nil)
	m.payouts.On("Save", ctx, mock.AnythingOfType("*selling.Payout")).Return(nil)
	m.invoices.On("FindByName", ctx, "SINV-#1001").Return(invoice, nil)
	m.settings.On("SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time")).Return(nil)

	err = service.SyncPayouts(ctx)

	require.NoError(t, err)
	assert.Empty(t, invoice.Taxes)
	m.invoices.AssertNotCalled(t, "Save", ctx, invoice)
}

func TestPayoutSyncService_SyncPayouts_OrderFetchFailureTolerated(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	transactions := []shopify.Transaction{
		{
			ID:            1,
			PayoutID:      7000,
			Type:          shopify.TransactionTypeCharge,
			Amount:        decimal.NewFromInt(100),
			SourceOrderID: 9000,
		},
	}

	m.settings.On("LastPayoutSync", ctx).Return(nil, nil)
	m.client.On("ListPayoutsSince", ctx, (*time.Time)(nil)).Return([]shopify.Payout{testPayout(7000)}, nil)
	m.payouts.On("ExistsByPayoutID", ctx, int64(7000)).Return(false, nil)
	m.client.On("ListTransactions", ctx, int64(7000)).Return(transactions, nil)
	m.client.On("GetOrder", ctx, int64(9000)).Return(nil, errors.New("api down"))
	m.orders.On("FindByShopifyOrderID", ctx, int64(9000)).Return(nil, selling.ErrDocumentNotFound)
	m.invoices.On("FindByShopifyOrderID", ctx, int64(9000)).Return(nil, selling.ErrDocumentNotFound)
	m.deliveries.On("FindByShopifyOrderID", ctx, int64(9000)).Return(nil, selling.ErrDocumentNotFound)

	var record *selling.Payout
	m.payouts.On("Save", ctx, mock.AnythingOfType("*selling.Payout")).Run(func(args mock.Arguments) {
		record = args.Get(1).(*selling.Payout)
	}).Return(nil)
	m.settings.On("SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time")).Return(nil)

	err := service.SyncPayouts(ctx)

	require.NoError(t, err)
	require.NotNil(t, record)
	require.Len(t, record.Transactions, 1)
	assert.Empty(t, record.Transactions[0].SalesInvoice)
	assert.Empty(t, record.Transactions[0].SourceOrderFinancialStatus)
}

func TestPayoutSyncService_SyncPayouts_TransactionsErrorSkipsPayout(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	m.settings.On("LastPayoutSync", ctx).Return(nil, nil)
	m.client.On("ListPayoutsSince", ctx, (*time.Time)(nil)).Return([]shopify.Payout{testPayout(7000)}, nil)
	m.payouts.On("ExistsByPayoutID", ctx, int64(7000)).Return(false, nil)
	m.client.On("ListTransactions", ctx, int64(7000)).Return(nil, errors.New("api down"))
	m.settings.On("SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time")).Return(nil)

	err := service.SyncPayouts(ctx)

	// The pass itself completes; the failed payout stays unrecorded and is
	// retried on the next run.
	require.NoError(t, err)
	m.payouts.AssertNotCalled(t, "Save", ctx, mock.Anything)
	m.settings.AssertCalled(t, "SetLastPayoutSync", ctx, mock.AnythingOfType("time.Time"))
}

func TestPayoutSyncService_SyncPayouts_ListingFailureKeepsCursor(t *testing.T) {
	service, m := newTestPayoutSync(PayoutSyncConfig{FeeAccountHead: "Shopify Fees"})
	ctx := context.Background()

	since := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	m.settings.On("LastPayoutSync", ctx).Return(&since, nil)
	m.client.On("ListPayoutsSince", ctx, &since).Return(nil, errors.New("api down"))

	err := service.SyncPayouts(ctx)

	require.Error(t, err)
	m.settings.AssertNotCalled(t, "SetLastPayoutSync", ctx, mock.Anything)
}
