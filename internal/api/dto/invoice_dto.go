package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// IssueInvoiceRequest payload.
type IssueInvoiceRequest struct {
	BookingID int64      `json:"booking_id"`
	Notes     string     `json:"notes"`
	DueDate   *time.Time `json:"due_date"`
}

// RecordPaymentRequest payload.
type RecordPaymentRequest struct {
	Method    string `json:"method"`
	Amount    string `json:"amount"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// InvoiceLineResponse is one billed line.
type InvoiceLineResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	ReferenceID *int64 `json:"reference_id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// InvoiceResponse is the API view of an invoice.
type InvoiceResponse struct {
	ID            int64                 `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	BookingID     int64                 `json:"booking_id"`
	Subtotal      string                `json:"subtotal"`
	TaxAmount     string                `json:"tax_amount"`
	TotalAmount   string                `json:"total_amount"`
	PaidAmount    string                `json:"paid_amount"`
	Balance       string                `json:"balance"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
	DueDate       *time.Time            `json:"due_date"`
	CreatedAt     time.Time             `json:"created_at"`
	Lines         []InvoiceLineResponse `json:"lines,omitempty"`
}

// NewInvoiceResponse maps a domain invoice with its lines.
func NewInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		BookingID:     inv.BookingID,
		Subtotal:      inv.Subtotal.StringFixed(2),
		TaxAmount:     inv.TaxAmount.StringFixed(2),
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		PaidAmount:    inv.PaidAmount.StringFixed(2),
		Balance:       inv.Balance().StringFixed(2),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
	}
	for i := range inv.Lines {
		line := &inv.Lines[i]
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			ID:          line.ID,
			Type:        string(line.Type),
			ReferenceID: line.ReferenceID,
			Description: line.Description,
			Quantity:    line.Quantity.String(),
			UnitPrice:   line.UnitPrice.StringFixed(2),
			LineTotal:   line.LineTotal.StringFixed(2),
		})
	}
	return resp
}

// PaymentResponse is the API view of a payment.
type PaymentResponse struct {
	ID        int64     `json:"id"`
	InvoiceID int64     `json:"invoice_id"`
	Method    string    `json:"method"`
	Amount    string    `json:"amount"`
	Reference string    `json:"reference"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPaymentResponse maps a domain payment.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Method:    string(p.Method),
		Amount:    p.Amount.StringFixed(2),
		Reference: p.Reference,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

// LedgerEntryResponse is the API view of a ledger posting leg.
type LedgerEntryResponse struct {
	ID              int64     `json:"id"`
	TransactionDate time.Time `json:"transaction_date"`
	Account         string    `json:"account"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	Reference       string    `json:"reference"`
	Description     string    `json:"description"`
}

// NewLedgerEntryResponse maps a domain ledger entry.
func NewLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              e.ID,
		TransactionDate: e.TransactionDate,
		Account:         e.Account,
		Type:            string(e.Type),
		Amount:          e.Amount.StringFixed(2),
		Reference:       e.Reference,
		Description:     e.Description,
	}
}

// AccountBalanceResponse aggregates one account.
type AccountBalanceResponse struct {
	Account string `json:"account"`
	Debits  string `json:"debits"`
	Credits string `json:"credits"`
	Net     string `json:"net"`
}
