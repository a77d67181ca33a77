package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType marks the side of a posting.
type LedgerEntryType string

const (
	LedgerDebit  LedgerEntryType = "DEBIT"
	LedgerCredit LedgerEntryType = "CREDIT"
)

// Ledger account names. CASH/CARD/ONLINE are asset accounts keyed by payment
// method; SERVICES is the revenue account credited on payment.
const (
	AccountCash     = "CASH"
	AccountCard     = "CARD"
	AccountOnline   = "ONLINE"
	AccountServices = "SERVICES"
)

// LedgerEntry is one side of a double-entry posting in the finance ledger.
type LedgerEntry struct {
	ID              int64
	TransactionDate time.Time
	Account         string
	Type            LedgerEntryType
	Amount          decimal.Decimal
	Reference       string
	Description     string
	CreatedBy       string
	CreatedAt       time.Time
}

// AccountForMethod maps a payment method to its asset account.
func AccountForMethod(m PaymentMethod) string {
	switch m {
	case PaymentCard:
		return AccountCard
	case PaymentOnline:
		return AccountOnline
	default:
		return AccountCash
	}
}
