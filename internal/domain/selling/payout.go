package selling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrPayoutInvalidID indicates a payout record without a remote payout id
	ErrPayoutInvalidID = errors.New("selling: invalid payout id")
	// ErrPayoutNotFound indicates no payout record matched the lookup
	ErrPayoutNotFound = errors.New("selling: payout not found")
)

// PayoutSummary holds the aggregated amounts copied from the remote payout,
// unpacked field by field.
type PayoutSummary struct {
	AdjustmentsFee      decimal.Decimal
	AdjustmentsGross    decimal.Decimal
	ChargesFee          decimal.Decimal
	ChargesGross        decimal.Decimal
	RefundsFee          decimal.Decimal
	RefundsGross        decimal.Decimal
	ReservedFundsFee    decimal.Decimal
	ReservedFundsGross  decimal.Decimal
	RetriedPayoutsFee   decimal.Decimal
	RetriedPayoutsGross decimal.Decimal
}

// PayoutTransaction is one reconciled balance transaction on a payout record.
// Document links may stay empty when backfill could not produce the local
// document; the financial status is a snapshot taken at reconciliation time
// and is not kept live afterward.
type PayoutTransaction struct {
	// TransactionID is the remote transaction id
	TransactionID int64
	// TransactionType is the remote transaction type
	TransactionType string
	// ProcessedAt is when the transaction was processed remotely
	ProcessedAt time.Time
	// TotalAmount is the gross amount with accounting sign applied
	TotalAmount decimal.Decimal
	// Fee is the processing fee (natural sign, as reported)
	Fee decimal.Decimal
	// NetAmount is the net amount with accounting sign applied
	NetAmount decimal.Decimal
	// Currency is the transaction currency code
	Currency string
	// SalesOrder is the linked local order name (empty if unresolved)
	SalesOrder string
	// SalesInvoice is the linked local invoice name (empty if unresolved)
	SalesInvoice string
	// DeliveryNote is the linked local delivery name (empty if unresolved)
	DeliveryNote string
	// SourceID is the remote source entity id
	SourceID int64
	// SourceType is the remote source entity kind
	SourceType string
	// SourceOrderID is the remote order id this transaction settles
	SourceOrderID int64
	// SourceOrderTransactionID is the remote order-level transaction id
	SourceOrderTransactionID int64
	// SourceOrderFinancialStatus is the order's payment status snapshot
	SourceOrderFinancialStatus string
}

// Payout is the local record of one remote payout. The remote payout id is
// the uniqueness key: a payout is reconciled at most once.
type Payout struct {
	ID           uuid.UUID
	PayoutID     int64
	PayoutDate   time.Time
	Status       string
	Currency     string
	Amount       decimal.Decimal
	Summary      PayoutSummary
	Transactions []PayoutTransaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPayout creates a payout record for a remote payout.
func NewPayout(payoutID int64, date time.Time, status, currency string, amount decimal.Decimal, summary PayoutSummary) (*Payout, error) {
	if payoutID == 0 {
		return nil, ErrPayoutInvalidID
	}
	now := time.Now()
	return &Payout{
		ID:           uuid.New(),
		PayoutID:     payoutID,
		PayoutDate:   date,
		Status:       status,
		Currency:     currency,
		Amount:       amount,
		Summary:      summary,
		Transactions: make([]PayoutTransaction, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AppendTransaction appends a reconciled transaction to the record.
func (p *Payout) AppendTransaction(txn PayoutTransaction) {
	p.Transactions = append(p.Transactions, txn)
	p.UpdatedAt = time.Now()
}

// TransactionsByInvoice groups the record's transactions by their linked
// sales invoice name, excluding unlinked transactions.
func (p *Payout) TransactionsByInvoice() map[string][]PayoutTransaction {
	grouped := make(map[string][]PayoutTransaction)
	for _, txn := range p.Transactions {
		if txn.SalesInvoice == "" {
			continue
		}
		grouped[txn.SalesInvoice] = append(grouped[txn.SalesInvoice], txn)
	}
	return grouped
}

// PayoutRepository persists payout records.
type PayoutRepository interface {
	// ExistsByPayoutID reports whether a record for the remote payout exists
	ExistsByPayoutID(ctx context.Context, payoutID int64) (bool, error)

	// FindByPayoutID finds the record for a remote payout.
	// Returns ErrPayoutNotFound when no record exists.
	FindByPayoutID(ctx context.Context, payoutID int64) (*Payout, error)

	// Save creates or updates a payout record
	Save(ctx context.Context, payout *Payout) error
}
