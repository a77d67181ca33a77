package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// BillingService issues invoices, takes payments and posts the ledger.
type BillingService struct {
	invoices   repository.InvoiceRepository
	bookings   repository.BookingRepository
	services   repository.ServiceTypeRepository
	ledger     repository.LedgerRepository
	dispatcher events.Dispatcher
}

// BillingDependencies bundles repositories for billing service.
type BillingDependencies struct {
	InvoiceRepo     repository.InvoiceRepository
	BookingRepo     repository.BookingRepository
	ServiceTypeRepo repository.ServiceTypeRepository
	LedgerRepo      repository.LedgerRepository
	Dispatcher      events.Dispatcher
}

// NewBillingService constructs the service.
func NewBillingService(deps BillingDependencies) *BillingService {
	return &BillingService{
		invoices:   deps.InvoiceRepo,
		bookings:   deps.BookingRepo,
		services:   deps.ServiceTypeRepo,
		ledger:     deps.LedgerRepo,
		dispatcher: deps.Dispatcher,
	}
}

// IssueInvoice builds an invoice from a completed booking: a service line at
// the catalog base price and/or a fuel line at posted pump prices, plus tax.
func (s *BillingService) IssueInvoice(ctx context.Context, actor events.Actor, bookingID int64, notes string, dueDate *time.Time) (*domain.Invoice, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, util.NewConflict("booking must be completed before invoicing",
			map[string]any{"status": string(booking.Status)})
	}

	if _, err := s.invoices.GetByBooking(ctx, bookingID); err == nil {
		return nil, util.NewConflict("booking already invoiced", map[string]any{"booking_id": bookingID})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	lines, err := s.buildLines(ctx, booking)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, util.NewValidationError("booking has nothing to bill", map[string]any{"booking_id": bookingID})
	}

	invoice := &domain.Invoice{
		InvoiceNumber: newInvoiceNumber(),
		BookingID:     bookingID,
		PaidAmount:    decimal.Zero,
		Status:        domain.InvoiceStatusUnpaid,
		Notes:         notes,
		DueDate:       dueDate,
		Lines:         lines,
	}
	invoice.RecalculateTotals()

	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventInvoiceIssued, actor, events.InvoiceIssuedPayload{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		BookingID:     bookingID,
		Total:         invoice.TotalAmount.StringFixed(2),
	})
	return invoice, nil
}

func (s *BillingService) buildLines(ctx context.Context, booking *domain.Booking) ([]domain.InvoiceLine, error) {
	var lines []domain.InvoiceLine

	if booking.ServiceTypeID != nil {
		st, err := s.services.GetByID(ctx, *booking.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.InvoiceLine{
			Type:        domain.LineTypeService,
			ReferenceID: booking.ServiceTypeID,
			Description: st.Name,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   st.BasePrice,
		})
	}

	if booking.FuelType != nil && booking.LitersRequested != nil {
		price, err := FuelPrice(*booking.FuelType)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.InvoiceLine{
			Type:        domain.LineTypeFuel,
			Description: fmt.Sprintf("%s @ %s/L", *booking.FuelType, price.StringFixed(2)),
			Quantity:    decimal.NewFromFloat(*booking.LitersRequested),
			UnitPrice:   price,
		})
	}

	return lines, nil
}

func newInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

// PaymentInput describes money received against an invoice.
type PaymentInput struct {
	InvoiceID int64
	Method    domain.PaymentMethod
	Amount    decimal.Decimal
	Reference string
	Notes     string
}

// RecordPayment applies a payment, never exceeding the outstanding balance,
// and posts the matching balanced debit/credit pair to the ledger.
func (s *BillingService) RecordPayment(ctx context.Context, actor events.Actor, input PaymentInput) (*domain.Invoice, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.NewValidationError("amount must be positive", nil)
	}

	invoice, err := s.invoices.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(invoice.Balance()) {
		return nil, util.NewValidationError("amount exceeds outstanding balance", map[string]any{
			"balance": invoice.Balance().StringFixed(2),
		})
	}

	payment := &domain.Payment{
		InvoiceID: invoice.ID,
		Method:    input.Method,
		Amount:    input.Amount,
		Reference: input.Reference,
		Notes:     input.Notes,
		CreatedBy: strconv.FormatInt(actor.UserID, 10),
	}
	if err := s.invoices.RecordPayment(ctx, payment); err != nil {
		return nil, err
	}

	invoice.PaidAmount = invoice.PaidAmount.Add(input.Amount)
	invoice.RefreshStatus()
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	now := time.Now()
	entries := []domain.LedgerEntry{
		{
			TransactionDate: now,
			Account:         domain.AccountForMethod(input.Method),
			Type:            domain.LedgerDebit,
			Amount:          input.Amount,
			Reference:       invoice.InvoiceNumber,
			Description:     fmt.Sprintf("payment on %s", invoice.InvoiceNumber),
			CreatedBy:       payment.CreatedBy,
		},
		{
			TransactionDate: now,
			Account:         domain.AccountServices,
			Type:            domain.LedgerCredit,
			Amount:          input.Amount,
			Reference:       invoice.InvoiceNumber,
			Description:     fmt.Sprintf("revenue on %s", invoice.InvoiceNumber),
			CreatedBy:       payment.CreatedBy,
		},
	}
	if err := s.ledger.CreateEntries(ctx, entries); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPaymentRecorded, actor, events.PaymentRecordedPayload{
		PaymentID: payment.ID,
		InvoiceID: invoice.ID,
		Method:    input.Method,
		Amount:    input.Amount.StringFixed(2),
	})
	return invoice, nil
}

// GetInvoice loads one invoice with its lines.
func (s *BillingService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

// ListInvoices pages through invoices, newest first.
func (s *BillingService) ListInvoices(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	return s.invoices.List(ctx, limit, offset)
}

// ListPayments lists payments on one invoice.
func (s *BillingService) ListPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return s.invoices.ListPayments(ctx, invoiceID)
}

// Ledger lists ledger entries for the finance view.
func (s *BillingService) Ledger(ctx context.Context, filter repository.LedgerFilter) ([]domain.LedgerEntry, error) {
	return s.ledger.List(ctx, filter)
}

// Balances aggregates per-account positions.
func (s *BillingService) Balances(ctx context.Context, filter repository.LedgerFilter) ([]repository.AccountBalance, error) {
	return s.ledger.Balances(ctx, filter)
}

func (s *BillingService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
