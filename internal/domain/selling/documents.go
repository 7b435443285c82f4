package selling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrDocumentNotFound indicates no sales document matched the lookup
	ErrDocumentNotFound = errors.New("selling: document not found")
	// ErrDocumentNotEditable indicates a mutation attempted on a finalized document
	ErrDocumentNotEditable = errors.New("selling: document is not editable")
	// ErrDocumentInvalidOrder indicates a document created without a remote order link
	ErrDocumentInvalidOrder = errors.New("selling: invalid remote order reference")
)

// DocStatus is the lifecycle state of a sales document. Finalization is
// irreversible: a submitted document never returns to draft.
type DocStatus int

const (
	// DocStatusDraft indicates the document is editable
	DocStatusDraft DocStatus = iota
	// DocStatusSubmitted indicates the document is finalized
	DocStatusSubmitted
	// DocStatusCancelled indicates the document was cancelled after submission
	DocStatusCancelled
)

// String returns the string representation of DocStatus.
func (s DocStatus) String() string {
	switch s {
	case DocStatusDraft:
		return "Draft"
	case DocStatusSubmitted:
		return "Submitted"
	case DocStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// TaxCharge is one tax or charge row on a sales invoice. Payout fees are
// folded in as negative-amount rows of charge type "Actual".
type TaxCharge struct {
	// ChargeType is the charge calculation type
	ChargeType string
	// AccountHead is the ledger account the charge posts to
	AccountHead string
	// Description describes the charge (the transaction type for fee rows)
	Description string
	// Amount is the charge amount (negative for withheld fees)
	Amount decimal.Decimal
}

// SalesOrder is a minimal local order document linked to a Shopify order.
type SalesOrder struct {
	ID              uuid.UUID
	Name            string
	ShopifyOrderID  int64
	Status          DocStatus
	Currency        string
	TotalAmount     decimal.Decimal
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSalesOrder creates a draft sales order for a remote order.
func NewSalesOrder(name string, shopifyOrderID int64, currency string, total decimal.Decimal) (*SalesOrder, error) {
	if shopifyOrderID == 0 {
		return nil, ErrDocumentInvalidOrder
	}
	now := time.Now()
	return &SalesOrder{
		ID:              uuid.New(),
		Name:            name,
		ShopifyOrderID:  shopifyOrderID,
		Status:          DocStatusDraft,
		Currency:        currency,
		TotalAmount:     total,
		TransactionDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SalesInvoice is a minimal local invoice document linked to a Shopify order.
type SalesInvoice struct {
	ID             uuid.UUID
	Name           string
	ShopifyOrderID int64
	SalesOrder     string
	Status         DocStatus
	Currency       string
	TotalAmount    decimal.Decimal
	Taxes          []TaxCharge
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSalesInvoice creates a draft invoice against a sales order.
func NewSalesInvoice(name string, shopifyOrderID int64, salesOrder string, currency string, total decimal.Decimal) (*SalesInvoice, error) {
	if shopifyOrderID == 0 {
		return nil, ErrDocumentInvalidOrder
	}
	now := time.Now()
	return &SalesInvoice{
		ID:             uuid.New(),
		Name:           name,
		ShopifyOrderID: shopifyOrderID,
		SalesOrder:     salesOrder,
		Status:         DocStatusDraft,
		Currency:       currency,
		TotalAmount:    total,
		Taxes:          make([]TaxCharge, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsEditable reports whether the invoice still accepts mutations.
func (inv *SalesInvoice) IsEditable() bool {
	return inv.Status == DocStatusDraft
}

// AppendTax appends a tax/charge row. Finalized invoices reject the append.
func (inv *SalesInvoice) AppendTax(charge TaxCharge) error {
	if !inv.IsEditable() {
		return ErrDocumentNotEditable
	}
	inv.Taxes = append(inv.Taxes, charge)
	inv.UpdatedAt = time.Now()
	return nil
}

// Submit finalizes the invoice. Submission is irreversible.
func (inv *SalesInvoice) Submit() error {
	if inv.Status != DocStatusDraft {
		return ErrDocumentNotEditable
	}
	inv.Status = DocStatusSubmitted
	inv.UpdatedAt = time.Now()
	return nil
}

// DeliveryNote is a minimal local delivery document linked to a Shopify order.
type DeliveryNote struct {
	ID             uuid.UUID
	Name           string
	ShopifyOrderID int64
	SalesOrder     string
	Status         DocStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDeliveryNote creates a draft delivery note against a sales order.
func NewDeliveryNote(name string, shopifyOrderID int64, salesOrder string) (*DeliveryNote, error) {
	if shopifyOrderID == 0 {
		return nil, ErrDocumentInvalidOrder
	}
	now := time.Now()
	return &DeliveryNote{
		ID:             uuid.New(),
		Name:           name,
		ShopifyOrderID: shopifyOrderID,
		SalesOrder:     salesOrder,
		Status:         DocStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ---------------------------------------------------------------------------
// Repository Interfaces
// ---------------------------------------------------------------------------

// SalesOrderRepository persists sales orders.
type SalesOrderRepository interface {
	// FindByShopifyOrderID finds the order linked to a remote order.
	// Returns ErrDocumentNotFound when no order exists.
	FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*SalesOrder, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *SalesOrder) error
}

// SalesInvoiceRepository persists sales invoices.
type SalesInvoiceRepository interface {
	// FindByShopifyOrderID finds the invoice linked to a remote order.
	// Returns ErrDocumentNotFound when no invoice exists.
	FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*SalesInvoice, error)

	// FindByName finds an invoice by its document name.
	// Returns ErrDocumentNotFound when no invoice exists.
	FindByName(ctx context.Context, name string) (*SalesInvoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *SalesInvoice) error
}

// DeliveryNoteRepository persists delivery notes.
type DeliveryNoteRepository interface {
	// FindByShopifyOrderID finds the delivery note linked to a remote order.
	// Returns ErrDocumentNotFound when no note exists.
	FindByShopifyOrderID(ctx context.Context, shopifyOrderID int64) (*DeliveryNote, error)

	// Save creates or updates a delivery note
	Save(ctx context.Context, note *DeliveryNote) error
}
