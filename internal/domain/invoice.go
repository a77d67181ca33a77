package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is derived from paid amount vs total.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// InvoiceLineType marks what a line bills for.
type InvoiceLineType string

const (
	LineTypeService InvoiceLineType = "SERVICE"
	LineTypePart    InvoiceLineType = "PART"
	LineTypeFuel    InvoiceLineType = "FUEL"
)

// TaxRate is the flat tax applied to invoice subtotals.
var TaxRate = decimal.NewFromFloat(0.15)

// Invoice bills a completed booking. Amounts are LKR.
type Invoice struct {
	ID            int64
	InvoiceNumber string
	BookingID     int64
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Status        InvoiceStatus
	Notes         string
	DueDate       *time.Time
	CreatedAt     time.Time
	Lines         []InvoiceLine
}

// InvoiceLine is a single billed item on an invoice.
type InvoiceLine struct {
	ID          int64
	InvoiceID   int64
	Type        InvoiceLineType
	ReferenceID *int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Balance is the amount still owed.
func (inv *Invoice) Balance() decimal.Decimal {
	return inv.TotalAmount.Sub(inv.PaidAmount)
}

// RecalculateTotals recomputes line totals, subtotal, tax and total.
func (inv *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.LineTotal = line.UnitPrice.Mul(line.Quantity)
		subtotal = subtotal.Add(line.LineTotal)
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal.Mul(TaxRate).Round(2)
	inv.TotalAmount = inv.Subtotal.Add(inv.TaxAmount)
}

// RefreshStatus derives the payment status from the amounts.
func (inv *Invoice) RefreshStatus() {
	switch {
	case inv.PaidAmount.LessThanOrEqual(decimal.Zero):
		inv.Status = InvoiceStatusUnpaid
	case inv.PaidAmount.GreaterThanOrEqual(inv.TotalAmount):
		inv.Status = InvoiceStatusPaid
	default:
		inv.Status = InvoiceStatusPartial
	}
}
