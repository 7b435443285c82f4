package shopify

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// Shopify serializes money as JSON strings and payout dates without a time
// component; the layouts and parse helpers below cover both.
const payoutDateLayout = "2006-01-02"

// parseAmount parses a money string, treating empty as zero.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseTime parses an RFC3339 timestamp, treating empty or malformed as zero.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ---------------------------------------------------------------------------
// Product resources
// ---------------------------------------------------------------------------

type productListResponse struct {
	Products []productResource `json:"products"`
}

type productResource struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	BodyHTML    string            `json:"body_html"`
	Vendor      string            `json:"vendor"`
	ProductType string            `json:"product_type"`
	Status      string            `json:"status"`
	Options     []optionResource  `json:"options"`
	Variants    []variantResource `json:"variants"`
	Image       *imageResource    `json:"image"`
}

type optionResource struct {
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Values   []string `json:"values"`
}

type variantResource struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"product_id"`
	Title      string  `json:"title"`
	SKU        string  `json:"sku"`
	Price      string  `json:"price"`
	Option1    string  `json:"option1"`
	Option2    string  `json:"option2"`
	Option3    string  `json:"option3"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	Position   int     `json:"position"`
}

type imageResource struct {
	Src string `json:"src"`
}

// toDomain converts a product resource to the domain representation.
func (p *productResource) toDomain() domain.Product {
	product := domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		BodyHTML:    p.BodyHTML,
		Vendor:      p.Vendor,
		ProductType: p.ProductType,
		Status:      domain.ProductStatus(p.Status),
		Options:     make([]domain.ProductOption, len(p.Options)),
		Variants:    make([]domain.Variant, len(p.Variants)),
	}
	for i, opt := range p.Options {
		product.Options[i] = domain.ProductOption{
			Name:     opt.Name,
			Position: opt.Position,
			Values:   opt.Values,
		}
	}
	for i, v := range p.Variants {
		product.Variants[i] = domain.Variant{
			ID:         v.ID,
			ProductID:  v.ProductID,
			Title:      v.Title,
			SKU:        v.SKU,
			Price:      parseAmount(v.Price),
			Options:    [domain.MaxOptionSlots]string{v.Option1, v.Option2, v.Option3},
			Weight:     decimal.NewFromFloat(v.Weight),
			WeightUnit: v.WeightUnit,
			Position:   v.Position,
		}
	}
	if p.Image != nil {
		product.Image = &domain.Image{Src: p.Image.Src}
	}
	return product
}

// ---------------------------------------------------------------------------
// Payout resources
// ---------------------------------------------------------------------------

type payoutListResponse struct {
	Payouts []payoutResource `json:"payouts"`
}

type payoutResource struct {
	ID       int64                 `json:"id"`
	Date     string                `json:"date"`
	Status   string                `json:"status"`
	Currency string                `json:"currency"`
	Amount   string                `json:"amount"`
	Summary  payoutSummaryResource `json:"summary"`
}

type payoutSummaryResource struct {
	AdjustmentsFeeAmount      string `json:"adjustments_fee_amount"`
	AdjustmentsGrossAmount    string `json:"adjustments_gross_amount"`
	ChargesFeeAmount          string `json:"charges_fee_amount"`
	ChargesGrossAmount        string `json:"charges_gross_amount"`
	RefundsFeeAmount          string `json:"refunds_fee_amount"`
	RefundsGrossAmount        string `json:"refunds_gross_amount"`
	ReservedFundsFeeAmount    string `json:"reserved_funds_fee_amount"`
	ReservedFundsGrossAmount  string `json:"reserved_funds_gross_amount"`
	RetriedPayoutsFeeAmount   string `json:"retried_payouts_fee_amount"`
	RetriedPayoutsGrossAmount string `json:"retried_payouts_gross_amount"`
}

// toDomain converts a payout resource to the domain representation.
func (p *payoutResource) toDomain() domain.Payout {
	date, err := time.Parse(payoutDateLayout, p.Date)
	if err != nil {
		date = time.Time{}
	}
	return domain.Payout{
		ID:       p.ID,
		Date:     date,
		Status:   p.Status,
		Currency: p.Currency,
		Amount:   parseAmount(p.Amount),
		Summary: domain.PayoutSummary{
			AdjustmentsFee:      parseAmount(p.Summary.AdjustmentsFeeAmount),
			AdjustmentsGross:    parseAmount(p.Summary.AdjustmentsGrossAmount),
			ChargesFee:          parseAmount(p.Summary.ChargesFeeAmount),
			ChargesGross:        parseAmount(p.Summary.ChargesGrossAmount),
			RefundsFee:          parseAmount(p.Summary.RefundsFeeAmount),
			RefundsGross:        parseAmount(p.Summary.RefundsGrossAmount),
			ReservedFundsFee:    parseAmount(p.Summary.ReservedFundsFeeAmount),
			ReservedFundsGross:  parseAmount(p.Summary.ReservedFundsGrossAmount),
			RetriedPayoutsFee:   parseAmount(p.Summary.RetriedPayoutsFeeAmount),
			RetriedPayoutsGross: parseAmount(p.Summary.RetriedPayoutsGrossAmount),
		},
	}
}

type transactionListResponse struct {
	Transactions []transactionResource `json:"transactions"`
}

type transactionResource struct {
	ID                       int64  `json:"id"`
	Type                     string `json:"type"`
	PayoutID                 int64  `json:"payout_id"`
	ProcessedAt              string `json:"processed_at"`
	Amount                   string `json:"amount"`
	Fee                      string `json:"fee"`
	Net                      string `json:"net"`
	Currency                 string `json:"currency"`
	SourceID                 int64  `json:"source_id"`
	SourceType               string `json:"source_type"`
	SourceOrderID            int64  `json:"source_order_id"`
	SourceOrderTransactionID int64  `json:"source_order_transaction_id"`
}

// toDomain converts a transaction resource to the domain representation.
func (t *transactionResource) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:                       t.ID,
		PayoutID:                 t.PayoutID,
		Type:                     domain.TransactionType(t.Type),
		ProcessedAt:              parseTime(t.ProcessedAt),
		Amount:                   parseAmount(t.Amount),
		Fee:                      parseAmount(t.Fee),
		Net:                      parseAmount(t.Net),
		Currency:                 t.Currency,
		SourceID:                 t.SourceID,
		SourceType:               t.SourceType,
		SourceOrderID:            t.SourceOrderID,
		SourceOrderTransactionID: t.SourceOrderTransactionID,
	}
}

// ---------------------------------------------------------------------------
// Order resources
// ---------------------------------------------------------------------------

type orderResponse struct {
	Order *orderResource `json:"order"`
}

type orderResource struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	FinancialStatus string             `json:"financial_status"`
	Currency        string             `json:"currency"`
	TotalPrice      string             `json:"total_price"`
	CreatedAt       string             `json:"created_at"`
	LineItems       []lineItemResource `json:"line_items"`
}

type lineItemResource struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// toDomain converts an order resource to the domain representation.
func (o *orderResource) toDomain() *domain.Order {
	order := &domain.Order{
		ID:              o.ID,
		Name:            o.Name,
		FinancialStatus: o.FinancialStatus,
		Currency:        o.Currency,
		TotalPrice:      parseAmount(o.TotalPrice),
		CreatedAt:       parseTime(o.CreatedAt),
		LineItems:       make([]domain.LineItem, len(o.LineItems)),
	}
	for i, line := range o.LineItems {
		order.LineItems[i] = domain.LineItem{
			ID:        line.ID,
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Title:     line.Title,
			Quantity:  line.Quantity,
			Price:     parseAmount(line.Price),
		}
	}
	return order
}
