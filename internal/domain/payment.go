package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates accepted tenders.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// ParsePaymentMethod validates a tender string.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentOnline:
		return PaymentMethod(s), true
	}
	return "", false
}

// Payment records money received against an invoice.
type Payment struct {
	ID        int64
	InvoiceID int64
	Method    PaymentMethod
	Amount    decimal.Decimal
	Reference string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
