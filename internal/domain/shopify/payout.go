package shopify

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a Shopify Payments balance transaction.
type TransactionType string

const (
	// TransactionTypePayout represents a disbursement to the merchant's bank
	TransactionTypePayout TransactionType = "payout"
	// TransactionTypeCharge represents a captured customer payment
	TransactionTypeCharge TransactionType = "charge"
	// TransactionTypeRefund represents a refund issued to a customer
	TransactionTypeRefund TransactionType = "refund"
	// TransactionTypeAdjustment represents a manual balance adjustment
	TransactionTypeAdjustment TransactionType = "adjustment"
	// TransactionTypeCredit represents a credit issued by Shopify
	TransactionTypeCredit TransactionType = "credit"
	// TransactionTypeDebit represents a debit issued by Shopify
	TransactionTypeDebit TransactionType = "debit"
)

// String returns the string representation of TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// PayoutSummary holds the aggregated amounts and fees reported with a payout.
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

// Payout represents a Shopify Payments payout: a disbursement event
// aggregating the balance transactions of a settlement period.
type Payout struct {
	// ID is the payout ID on Shopify
	ID int64
	// Date is the payout settlement date
	Date time.Time
	// Status is the payout status as reported by Shopify (e.g. "paid")
	Status string
	// Currency is the payout currency code
	Currency string
	// Amount is the total disbursed amount
	Amount decimal.Decimal
	// Summary holds the aggregated charge/refund/adjustment amounts
	Summary PayoutSummary
}

// Transaction represents a Shopify Payments balance transaction belonging to
// a payout.
type Transaction struct {
	// ID is the transaction ID on Shopify
	ID int64
	// PayoutID is the payout this transaction settles under (0 if pending)
	PayoutID int64
	// Type classifies the transaction
	Type TransactionType
	// ProcessedAt is when the transaction was processed
	ProcessedAt time.Time
	// Amount is the gross amount as reported by Shopify (always positive)
	Amount decimal.Decimal
	// Fee is the processing fee withheld by Shopify
	Fee decimal.Decimal
	// Net is the net amount as reported by Shopify (always positive)
	Net decimal.Decimal
	// Currency is the transaction currency code
	Currency string
	// SourceID is the ID of the entity that generated this transaction
	SourceID int64
	// SourceType is the entity kind behind SourceID (e.g. "charge")
	SourceType string
	// SourceOrderID is the Shopify order this transaction settles (0 if none)
	SourceOrderID int64
	// SourceOrderTransactionID is the order-level transaction ID (0 if none)
	SourceOrderTransactionID int64
}

// SignedAmount returns the gross amount with accounting sign applied.
// Payout transactions are disbursements, so their amount is recorded as
// negative; every other transaction type keeps its natural sign.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypePayout {
		return t.Amount.Neg()
	}
	return t.Amount
}

// SignedNet returns the net amount with the same sign rule as SignedAmount.
func (t Transaction) SignedNet() decimal.Decimal {
	if t.Type == TransactionTypePayout {
		return t.Net.Neg()
	}
	return t.Net
}

// LineItem represents a line item on a Shopify order. Shopify allows line
// items to reference products, variants or bare titles that no longer exist,
// so every identifying field here may be zero-valued.
type LineItem struct {
	// ID is the line item ID on Shopify
	ID int64
	// ProductID is the referenced product ID (0 when orphaned)
	ProductID int64
	// VariantID is the referenced variant ID (0 when orphaned)
	VariantID int64
	// Title is the line item title as captured at order time
	Title string
	// Quantity is the ordered quantity
	Quantity int
	// Price is the per-unit price at order time
	Price decimal.Decimal
}

// Order represents a Shopify order payload, reduced to the fields the
// reconciliation engine needs.
type Order struct {
	// ID is the order ID on Shopify
	ID int64
	// Name is the human-facing order name (e.g. "#1001")
	Name string
	// FinancialStatus is the order's payment status (e.g. "paid", "refunded")
	FinancialStatus string
	// Currency is the order currency code
	Currency string
	// TotalPrice is the order total
	TotalPrice decimal.Decimal
	// LineItems contains the order lines
	LineItems []LineItem
	// CreatedAt is when the order was placed
	CreatedAt time.Time
}
