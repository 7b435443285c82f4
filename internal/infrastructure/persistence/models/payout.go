package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
)

// PayoutModel is the persistence model for the local payout record. The
// remote payout id carries a unique index: it is the at-most-once guard.
type PayoutModel struct {
	ID                  uuid.UUID                `gorm:"type:uuid;primaryKey"`
	PayoutID            int64                    `gorm:"not null;uniqueIndex"`
	PayoutDate          time.Time                `gorm:"not null"`
	Status              string                   `gorm:"type:varchar(50)"`
	Currency            string                   `gorm:"type:varchar(10)"`
	Amount              decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	AdjustmentsFee      decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	AdjustmentsGross    decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	ChargesFee          decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	ChargesGross        decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	RefundsFee          decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	RefundsGross        decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	ReservedFundsFee    decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	ReservedFundsGross  decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	RetriedPayoutsFee   decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	RetriedPayoutsGross decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Transactions        []PayoutTransactionModel `gorm:"foreignKey:PayoutRecordID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time                `gorm:"not null"`
	UpdatedAt           time.Time                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PayoutModel) TableName() string {
	return "payouts"
}

// ToDomain converts the persistence model to a domain Payout record.
func (m *PayoutModel) ToDomain() *selling.Payout {
	payout := &selling.Payout{
		ID:         m.ID,
		PayoutID:   m.PayoutID,
		PayoutDate: m.PayoutDate,
		Status:     m.Status,
		Currency:   m.Currency,
		Amount:     m.Amount,
		Summary: selling.PayoutSummary{
			AdjustmentsFee:      m.AdjustmentsFee,
			AdjustmentsGross:    m.AdjustmentsGross,
			ChargesFee:          m.ChargesFee,
			ChargesGross:        m.ChargesGross,
			RefundsFee:          m.RefundsFee,
			RefundsGross:        m.RefundsGross,
			ReservedFundsFee:    m.ReservedFundsFee,
			ReservedFundsGross:  m.ReservedFundsGross,
			RetriedPayoutsFee:   m.RetriedPayoutsFee,
			RetriedPayoutsGross: m.RetriedPayoutsGross,
		},
		Transactions: make([]selling.PayoutTransaction, len(m.Transactions)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for i, txn := range m.Transactions {
		payout.Transactions[i] = txn.ToDomain()
	}
	return payout
}

// FromDomain populates the persistence model from a domain Payout record.
func (m *PayoutModel) FromDomain(p *selling.Payout) {
	m.ID = p.ID
	m.PayoutID = p.PayoutID
	m.PayoutDate = p.PayoutDate
	m.Status = p.Status
	m.Currency = p.Currency
	m.Amount = p.Amount
	m.AdjustmentsFee = p.Summary.AdjustmentsFee
	m.AdjustmentsGross = p.Summary.AdjustmentsGross
	m.ChargesFee = p.Summary.ChargesFee
	m.ChargesGross = p.Summary.ChargesGross
	m.RefundsFee = p.Summary.RefundsFee
	m.RefundsGross = p.Summary.RefundsGross
	m.ReservedFundsFee = p.Summary.ReservedFundsFee
	m.ReservedFundsGross = p.Summary.ReservedFundsGross
	m.RetriedPayoutsFee = p.Summary.RetriedPayoutsFee
	m.RetriedPayoutsGross = p.Summary.RetriedPayoutsGross
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.Transactions = make([]PayoutTransactionModel, len(p.Transactions))
	for i, txn := range p.Transactions {
		m.Transactions[i] = PayoutTransactionModelFromDomain(p.ID, txn)
	}
}

// PayoutModelFromDomain creates a new persistence model from a domain Payout.
func PayoutModelFromDomain(p *selling.Payout) *PayoutModel {
	m := &PayoutModel{}
	m.FromDomain(p)
	return m
}

// PayoutTransactionModel is the persistence model for one reconciled balance
// transaction row on a payout record.
type PayoutTransactionModel struct {
	ID                         uint            `gorm:"primaryKey;autoIncrement"`
	PayoutRecordID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionID              int64           `gorm:"not null;index"`
	TransactionType            string          `gorm:"type:varchar(50);not null"`
	ProcessedAt                time.Time       `gorm:"not null"`
	TotalAmount                decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Fee                        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	NetAmount                  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency                   string          `gorm:"type:varchar(10)"`
	SalesOrder                 string          `gorm:"type:varchar(140)"`
	SalesInvoice               string          `gorm:"type:varchar(140);index"`
	DeliveryNote               string          `gorm:"type:varchar(140)"`
	SourceID                   int64           `gorm:"not null;default:0"`
	SourceType                 string          `gorm:"type:varchar(50)"`
	SourceOrderID              int64           `gorm:"not null;default:0;index"`
	SourceOrderTransactionID   int64           `gorm:"not null;default:0"`
	SourceOrderFinancialStatus string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PayoutTransactionModel) TableName() string {
	return "payout_transactions"
}

// ToDomain converts the persistence model to a domain PayoutTransaction row.
func (m *PayoutTransactionModel) ToDomain() selling.PayoutTransaction {
	return selling.PayoutTransaction{
		TransactionID:              m.TransactionID,
		TransactionType:            m.TransactionType,
		ProcessedAt:                m.ProcessedAt,
		TotalAmount:                m.TotalAmount,
		Fee:                        m.Fee,
		NetAmount:                  m.NetAmount,
		Currency:                   m.Currency,
		SalesOrder:                 m.SalesOrder,
		SalesInvoice:               m.SalesInvoice,
		DeliveryNote:               m.DeliveryNote,
		SourceID:                   m.SourceID,
		SourceType:                 m.SourceType,
		SourceOrderID:              m.SourceOrderID,
		SourceOrderTransactionID:   m.SourceOrderTransactionID,
		SourceOrderFinancialStatus: m.SourceOrderFinancialStatus,
	}
}

// PayoutTransactionModelFromDomain creates a new persistence model from a domain PayoutTransaction.
func PayoutTransactionModelFromDomain(payoutRecordID uuid.UUID, txn selling.PayoutTransaction) PayoutTransactionModel {
	return PayoutTransactionModel{
		PayoutRecordID:             payoutRecordID,
		TransactionID:              txn.TransactionID,
		TransactionType:            txn.TransactionType,
		ProcessedAt:                txn.ProcessedAt,
		TotalAmount:                txn.TotalAmount,
		Fee:                        txn.Fee,
		NetAmount:                  txn.NetAmount,
		Currency:                   txn.Currency,
		SalesOrder:                 txn.SalesOrder,
		SalesInvoice:               txn.SalesInvoice,
		DeliveryNote:               txn.DeliveryNote,
		SourceID:                   txn.SourceID,
		SourceType:                 txn.SourceType,
		SourceOrderID:              txn.SourceOrderID,
		SourceOrderTransactionID:   txn.SourceOrderTransactionID,
		SourceOrderFinancialStatus: txn.SourceOrderFinancialStatus,
	}
}
