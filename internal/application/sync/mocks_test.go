package sync

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// Mock implementations shared by the package tests

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByShopifyProductID(ctx context.Context, productID int64) (*catalog.Item, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByShopifyVariantID(ctx context.Context, variantID int64) (*catalog.Item, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindVariantWithAttributes(ctx context.Context, templateCode string, values map[string]string) (*catalog.Item, error) {
	args := m.Called(ctx, templateCode, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockAttributeRepository struct {
	mock.Mock
}

func (m *MockAttributeRepository) FindByName(ctx context.Context, name string) (*catalog.ItemAttribute, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ItemAttribute), args.Error(1)
}

func (m *MockAttributeRepository) Save(ctx context.Context, attr *catalog.ItemAttribute) error {
	args := m.Called(ctx, attr)
	return args.Error(0)
}

type MockItemGroupRepository struct {
	mock.Mock
}

func (m *MockItemGroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemGroupRepository) Save(ctx context.Context, group *catalog.ItemGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByNameOrShopifyID(ctx context.Context, name, shopifyID string) (*catalog.Supplier, error) {
	args := m.Called(ctx, name, shopifyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *catalog.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

type MockItemPriceRepository struct {
	mock.Mock
}

func (m *MockItemPriceRepository) FindByItemAndPriceList(ctx context.Context, itemCode, priceList string) (*catalog.ItemPrice, error) {
	args := m.Called(ctx, itemCode, priceList)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ItemPrice), args.Error(1)
}

func (m *MockItemPriceRepository) Save(ctx context.Context, price *catalog.ItemPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) ListActiveProducts(ctx context.Context) ([]shopify.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shopify.Product), args.Error(1)
}

type MockPayoutClient struct {
	mock.Mock
}

func (m *MockPayoutClient) ListPayoutsSince(ctx context.Context, since *time.Time) ([]shopify.Payout, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shopify.Payout), args.Error(1)
}

func (m *MockPayoutClient) ListTransactions(ctx context.Context, payoutID int64) ([]shopify.Transaction, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shopify.Transaction), args.Error(1)
}

func (m *MockPayoutClient) GetOrder(ctx context.Context, orderID int64) (*shopify.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopify.Order), args.Error(1)
}

type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.SalesOrder, error) {
	args := m.Called(ctx, shopifyOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selling.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *selling.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockSalesInvoiceRepository struct {
	mock.Mock
}

func (m *MockSalesInvoiceRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.SalesInvoice, error) {
	args := m.Called(ctx, shopifyOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selling.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindByName(ctx context.Context, name string) (*selling.SalesInvoice, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selling.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) Save(ctx context.Context, invoice *selling.SalesInvoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

type MockDeliveryNoteRepository struct {
	mock.Mock
}

func (m *MockDeliveryNoteRepository) FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*selling.DeliveryNote, error) {
	args := m.Called(ctx, shopifyOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selling.DeliveryNote), args.Error(1)
}

func (m *MockDeliveryNoteRepository) Save(ctx context.Context, note *selling.DeliveryNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) ExistsByPayoutID(ctx context.Context, payoutID int64) (bool, error) {
	args := m.Called(ctx, payoutID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayoutRepository) FindByPayoutID(ctx context.Context, payoutID int64) (*selling.Payout, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*selling.Payout), args.Error(1)
}

func (m *MockPayoutRepository) Save(ctx context.Context, payout *selling.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

type MockSettingsStore struct {
	mock.Mock
}

func (m *MockSettingsStore) LastPayoutSync(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockSettingsStore) SetLastPayoutSync(ctx context.Context, t time.Time) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) Enqueue(name string, job func(ctx context.Context)) bool {
	args := m.Called(name, job)
	return args.Bool(0)
}

// noopAudit is a SyncLogger that discards everything.
type noopAudit struct{}

func (noopAudit) Record(ctx context.Context, status Status, message string, err error) {}
