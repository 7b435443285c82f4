package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
)

// SalesOrderModel is the persistence model for the SalesOrder document.
type SalesOrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name            string            `gorm:"type:varchar(140);not null;uniqueIndex"`
	ShopifyOrderID  int64             `gorm:"not null;uniqueIndex"`
	Status          selling.DocStatus `gorm:"not null;default:0"`
	Currency        string            `gorm:"type:varchar(10)"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	TransactionDate time.Time         `gorm:"not null"`
	CreatedAt       time.Time         `gorm:"not null"`
	UpdatedAt       time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the persistence model to a domain SalesOrder document.
func (m *SalesOrderModel) ToDomain() *selling.SalesOrder {
	return &selling.SalesOrder{
		ID:              m.ID,
		Name:            m.Name,
		ShopifyOrderID:  m.ShopifyOrderID,
		Status:          m.Status,
		Currency:        m.Currency,
		TotalAmount:     m.TotalAmount,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain SalesOrder document.
func (m *SalesOrderModel) FromDomain(o *selling.SalesOrder) {
	m.ID = o.ID
	m.Name = o.Name
	m.ShopifyOrderID = o.ShopifyOrderID
	m.Status = o.Status
	m.Currency = o.Currency
	m.TotalAmount = o.TotalAmount
	m.TransactionDate = o.TransactionDate
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
}

// SalesOrderModelFromDomain creates a new persistence model from a domain SalesOrder.
func SalesOrderModelFromDomain(o *selling.SalesOrder) *SalesOrderModel {
	m := &SalesOrderModel{}
	m.FromDomain(o)
	return m
}

// SalesInvoiceModel is the persistence model for the SalesInvoice document.
type SalesInvoiceModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name           string                 `gorm:"type:varchar(140);not null;uniqueIndex"`
	ShopifyOrderID int64                  `gorm:"not null;uniqueIndex"`
	SalesOrder     string                 `gorm:"type:varchar(140);index"`
	Status         selling.DocStatus      `gorm:"not null;default:0"`
	Currency       string                 `gorm:"type:varchar(10)"`
	TotalAmount    decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Taxes          []SalesInvoiceTaxModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time              `gorm:"not null"`
	UpdatedAt      time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesInvoiceModel) TableName() string {
	return "sales_invoices"
}

// ToDomain converts the persistence model to a domain SalesInvoice document.
func (m *SalesInvoiceModel) ToDomain() *selling.SalesInvoice {
	invoice := &selling.SalesInvoice{
		ID:             m.ID,
		Name:           m.Name,
		ShopifyOrderID: m.ShopifyOrderID,
		SalesOrder:     m.SalesOrder,
		Status:         m.Status,
		Currency:       m.Currency,
		TotalAmount:    m.TotalAmount,
		Taxes:          make([]selling.TaxCharge, len(m.Taxes)),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for i, tax := range m.Taxes {
		invoice.Taxes[i] = tax.ToDomain()
	}
	return invoice
}

// FromDomain populates the persistence model from a domain SalesInvoice document.
func (m *SalesInvoiceModel) FromDomain(inv *selling.SalesInvoice) {
	m.ID = inv.ID
	m.Name = inv.Name
	m.ShopifyOrderID = inv.ShopifyOrderID
	m.SalesOrder = inv.SalesOrder
	m.Status = inv.Status
	m.Currency = inv.Currency
	m.TotalAmount = inv.TotalAmount
	m.CreatedAt = inv.CreatedAt
	m.UpdatedAt = inv.UpdatedAt
	m.Taxes = make([]SalesInvoiceTaxModel, len(inv.Taxes))
	for i, tax := range inv.Taxes {
		m.Taxes[i] = SalesInvoiceTaxModelFromDomain(inv.ID, tax)
	}
}

// SalesInvoiceModelFromDomain creates a new persistence model from a domain SalesInvoice.
func SalesInvoiceModelFromDomain(inv *selling.SalesInvoice) *SalesInvoiceModel {
	m := &SalesInvoiceModel{}
	m.FromDomain(inv)
	return m
}

// SalesInvoiceTaxModel is the persistence model for one tax/charge row on an
// invoice.
type SalesInvoiceTaxModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChargeType  string          `gorm:"type:varchar(50);not null"`
	AccountHead string          `gorm:"type:varchar(140);not null"`
	Description string          `gorm:"type:varchar(200)"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (SalesInvoiceTaxModel) TableName() string {
	return "sales_invoice_taxes"
}

// ToDomain converts the persistence model to a domain TaxCharge row.
func (m *SalesInvoiceTaxModel) ToDomain() selling.TaxCharge {
	return selling.TaxCharge{
		ChargeType:  m.ChargeType,
		AccountHead: m.AccountHead,
		Description: m.Description,
		Amount:      m.Amount,
	}
}

// SalesInvoiceTaxModelFromDomain creates a new persistence model from a domain TaxCharge.
func SalesInvoiceTaxModelFromDomain(invoiceID uuid.UUID, tax selling.TaxCharge) SalesInvoiceTaxModel {
	return SalesInvoiceTaxModel{
		InvoiceID:   invoiceID,
		ChargeType:  tax.ChargeType,
		AccountHead: tax.AccountHead,
		Description: tax.Description,
		Amount:      tax.Amount,
	}
}

// DeliveryNoteModel is the persistence model for the DeliveryNote document.
type DeliveryNoteModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name           string            `gorm:"type:varchar(140);not null;uniqueIndex"`
	ShopifyOrderID int64             `gorm:"not null;uniqueIndex"`
	SalesOrder     string            `gorm:"type:varchar(140);index"`
	Status         selling.DocStatus `gorm:"not null;default:0"`
	CreatedAt      time.Time         `gorm:"not null"`
	UpdatedAt      time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeliveryNoteModel) TableName() string {
	return "delivery_notes"
}

// ToDomain converts the persistence model to a domain DeliveryNote document.
func (m *DeliveryNoteModel) ToDomain() *selling.DeliveryNote {
	return &selling.DeliveryNote{
		ID:             m.ID,
		Name:           m.Name,
		ShopifyOrderID: m.ShopifyOrderID,
		SalesOrder:     m.SalesOrder,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain DeliveryNote document.
func (m *DeliveryNoteModel) FromDomain(n *selling.DeliveryNote) {
	m.ID = n.ID
	m.Name = n.Name
	m.ShopifyOrderID = n.ShopifyOrderID
	m.SalesOrder = n.SalesOrder
	m.Status = n.Status
	m.CreatedAt = n.CreatedAt
	m.UpdatedAt = n.UpdatedAt
}

// DeliveryNoteModelFromDomain creates a new persistence model from a domain DeliveryNote.
func DeliveryNoteModelFromDomain(n *selling.DeliveryNote) *DeliveryNoteModel {
	m := &DeliveryNoteModel{}
	m.FromDomain(n)
	return m
}
