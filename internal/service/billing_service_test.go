package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
)

type fakeInvoiceRepo struct {
	invoices map[int64]*domain.Invoice
	payments []domain.Payment
	nextID   int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[int64]*domain.Invoice{}, nextID: 1}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) error {
	invoice.ID = f.nextID
	f.nextID++
	copied := *invoice
	f.invoices[invoice.ID] = &copied
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, invoice *domain.Invoice) error {
	if _, ok := f.invoices[invoice.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *invoice
	f.invoices[invoice.ID] = &copied
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *invoice
	return &copied, nil
}

func (f *fakeInvoiceRepo) GetByBooking(_ context.Context, bookingID int64) (*domain.Invoice, error) {
	for _, invoice := range f.invoices {
		if invoice.BookingID == bookingID {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeInvoiceRepo) List(_ context.Context, _, _ int) ([]domain.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) RecordPayment(_ context.Context, payment *domain.Payment) error {
	payment.ID = int64(len(f.payments) + 1)
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeInvoiceRepo) ListPayments(_ context.Context, invoiceID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, _ *domain.Booking) error { return nil }
func (f *fakeBookingRepo) Update(_ context.Context, _ *domain.Booking) error { return nil }
func (f *fakeBookingRepo) Delete(_ context.Context, _ int64) error           { return nil }

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ repository.BookingFilter) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, booking := range f.bookings {
		out = append(out, *booking)
	}
	return out, nil
}

type fakeServiceTypeRepo struct {
	types map[int64]*domain.ServiceType
}

func (f *fakeServiceTypeRepo) Create(_ context.Context, _ *domain.ServiceType) error { return nil }
func (f *fakeServiceTypeRepo) Update(_ context.Context, _ *domain.ServiceType) error { return nil }

func (f *fakeServiceTypeRepo) GetByID(_ context.Context, id int64) (*domain.ServiceType, error) {
	st, ok := f.types[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *st
	return &copied, nil
}

func (f *fakeServiceTypeRepo) List(_ context.Context, _ bool) ([]domain.ServiceType, error) {
	return nil, nil
}

func (f *fakeServiceTypeRepo) ListLocations(_ context.Context) ([]domain.Location, error) {
	return nil, nil
}

type fakeLedgerRepo struct {
	entries []domain.LedgerEntry
}

func (f *fakeLedgerRepo) CreateEntries(_ context.Context, entries []domain.LedgerEntry) error {
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeLedgerRepo) List(_ context.Context, _ repository.LedgerFilter) ([]domain.LedgerEntry, error) {
	return f.entries, nil
}

func (f *fakeLedgerRepo) Balances(_ context.Context, _ repository.LedgerFilter) ([]repository.AccountBalance, error) {
	return nil, nil
}

func newBillingFixture() (*BillingService, *fakeInvoiceRepo, *fakeBookingRepo, *fakeLedgerRepo) {
	serviceTypeID := int64(7)
	fuelType := domain.FuelPetrol92
	liters := 10.0

	invoices := newFakeInvoiceRepo()
	ledger := &fakeLedgerRepo{}
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:            1,
			CustomerID:    100,
			ServiceTypeID: &serviceTypeID,
			Type:          domain.BookingTypeService,
			Status:        domain.BookingStatusCompleted,
		},
		2: {
			ID:              2,
			CustomerID:      100,
			Type:            domain.BookingTypeFuel,
			Status:          domain.BookingStatusCompleted,
			FuelType:        &fuelType,
			LitersRequested: &liters,
		},
		3: {
			ID:         3,
			CustomerID: 100,
			Type:       domain.BookingTypeService,
			Status:     domain.BookingStatusConfirmed,
		},
	}}
	serviceTypes := &fakeServiceTypeRepo{types: map[int64]*domain.ServiceType{
		7: {ID: 7, Code: "FULL_SVC", Name: "Full Service", BasePrice: decimal.NewFromInt(12000), IsActive: true},
	}}

	svc := NewBillingService(BillingDependencies{
		InvoiceRepo:     invoices,
		BookingRepo:     bookings,
		ServiceTypeRepo: serviceTypes,
		LedgerRepo:      ledger,
	})
	return svc, invoices, bookings, ledger
}

var billingActor = events.Actor{UserID: 55, Role: domain.RoleFinance}

func TestIssueInvoiceServiceBooking(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	invoice, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil)
	if err != nil {
		t.Fatalf("IssueInvoice: %v", err)
	}
	if len(invoice.Lines) != 1 || invoice.Lines[0].Type != domain.LineTypeService {
		t.Fatalf("expected one service line, got %+v", invoice.Lines)
	}
	if !invoice.Subtotal.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("subtotal = %s, want 12000", invoice.Subtotal)
	}
	if !invoice.TaxAmount.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("tax = %s, want 1800 (15%%)", invoice.TaxAmount)
	}
	if !invoice.TotalAmount.Equal(decimal.NewFromInt(13800)) {
		t.Errorf("total = %s, want 13800", invoice.TotalAmount)
	}
	if invoice.Status != domain.InvoiceStatusUnpaid {
		t.Errorf("status = %s, want UNPAID", invoice.Status)
	}
}

func TestIssueInvoiceFuelBooking(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	invoice, err := svc.IssueInvoice(context.Background(), billingActor, 2, "", nil)
	if err != nil {
		t.Fatalf("IssueInvoice: %v", err)
	}
	if len(invoice.Lines) != 1 || invoice.Lines[0].Type != domain.LineTypeFuel {
		t.Fatalf("expected one fuel line, got %+v", invoice.Lines)
	}
	// 10 L of PETROL_92 at 299/L
	if !invoice.Subtotal.Equal(decimal.NewFromInt(2990)) {
		t.Errorf("subtotal = %s, want 2990", invoice.Subtotal)
	}
}

func TestIssueInvoiceRequiresCompletedBooking(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	if _, err := svc.IssueInvoice(context.Background(), billingActor, 3, "", nil); err == nil {
		t.Fatal("expected error for non-completed booking")
	}
}

func TestIssueInvoiceRejectsDoubleBilling(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	if _, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil); err != nil {
		t.Fatalf("first invoice: %v", err)
	}
	if _, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil); err == nil {
		t.Fatal("expected error invoicing the same booking twice")
	}
}

func TestRecordPaymentPostsBalancedLedgerPair(t *testing.T) {
	svc, _, _, ledger := newBillingFixture()

	invoice, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil)
	if err != nil {
		t.Fatalf("IssueInvoice: %v", err)
	}

	updated, err := svc.RecordPayment(context.Background(), billingActor, PaymentInput{
		InvoiceID: invoice.ID,
		Method:    domain.PaymentCard,
		Amount:    decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.Status != domain.InvoiceStatusPartial {
		t.Errorf("status = %s, want PARTIAL", updated.Status)
	}
	if !updated.Balance().Equal(decimal.NewFromInt(8800)) {
		t.Errorf("balance = %s, want 8800", updated.Balance())
	}

	if len(ledger.entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(ledger.entries))
	}
	debit, credit := ledger.entries[0], ledger.entries[1]
	if debit.Type != domain.LedgerDebit || debit.Account != domain.AccountCard {
		t.Errorf("debit leg = %s/%s, want DEBIT/CARD", debit.Type, debit.Account)
	}
	if credit.Type != domain.LedgerCredit || credit.Account != domain.AccountServices {
		t.Errorf("credit leg = %s/%s, want CREDIT/SERVICES", credit.Type, credit.Account)
	}
	if !debit.Amount.Equal(credit.Amount) {
		t.Errorf("legs unbalanced: %s vs %s", debit.Amount, credit.Amount)
	}
}

func TestRecordPaymentCapsAtBalance(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	invoice, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil)
	if err != nil {
		t.Fatalf("IssueInvoice: %v", err)
	}

	over := invoice.TotalAmount.Add(decimal.NewFromInt(1))
	if _, err := svc.RecordPayment(context.Background(), billingActor, PaymentInput{
		InvoiceID: invoice.ID,
		Method:    domain.PaymentCash,
		Amount:    over,
	}); err == nil {
		t.Fatal("expected error paying above the balance")
	}
}

func TestRecordPaymentToPaidStatus(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	invoice, err := svc.IssueInvoice(context.Background(), billingActor, 1, "", nil)
	if err != nil {
		t.Fatalf("IssueInvoice: %v", err)
	}

	updated, err := svc.RecordPayment(context.Background(), billingActor, PaymentInput{
		InvoiceID: invoice.ID,
		Method:    domain.PaymentOnline,
		Amount:    invoice.TotalAmount,
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.Status != domain.InvoiceStatusPaid {
		t.Errorf("status = %s, want PAID", updated.Status)
	}
	if !updated.Balance().IsZero() {
		t.Errorf("balance = %s, want 0", updated.Balance())
	}
}
