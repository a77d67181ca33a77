package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// InvoiceRepository encapsulates invoice, line and payment persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]domain.Invoice, error)
	RecordPayment(ctx context.Context, payment *domain.Payment) error
	ListPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

const invoiceColumns = `id, invoice_number, booking_id, subtotal, tax_amount, total_amount, paid_amount, status, notes, due_date, created_at`

// Create persists the invoice and its lines in one transaction.
func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := tx.QueryRow(ctx,
		`INSERT INTO invoices (invoice_number, booking_id, subtotal, tax_amount, total_amount, paid_amount, status, notes, due_date)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
         RETURNING id, created_at`,
		invoice.InvoiceNumber,
		invoice.BookingID,
		invoice.Subtotal,
		invoice.TaxAmount,
		invoice.TotalAmount,
		invoice.PaidAmount,
		invoice.Status,
		invoice.Notes,
		invoice.DueDate,
	).Scan(&invoice.ID, &invoice.CreatedAt); err != nil {
		return err
	}

	for i := range invoice.Lines {
		line := &invoice.Lines[i]
		line.InvoiceID = invoice.ID
		if err := tx.QueryRow(ctx,
			`INSERT INTO invoice_lines (invoice_id, type, reference_id, description, quantity, unit_price, line_total)
             VALUES ($1,$2,$3,$4,$5,$6,$7)
             RETURNING id`,
			line.InvoiceID,
			line.Type,
			line.ReferenceID,
			line.Description,
			line.Quantity,
			line.UnitPrice,
			line.LineTotal,
		).Scan(&line.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	const query = `
        UPDATE invoices SET paid_amount=$1, status=$2, notes=$3, due_date=$4 WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		invoice.PaidAmount,
		invoice.Status,
		invoice.Notes,
		invoice.DueDate,
		invoice.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return r.fetchSingle(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
}

func (r *invoiceRepository) GetByBooking(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	return r.fetchSingle(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE booking_id=$1`, bookingID)
}

func (r *invoiceRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.BookingID,
		&invoice.Subtotal,
		&invoice.TaxAmount,
		&invoice.TotalAmount,
		&invoice.PaidAmount,
		&invoice.Status,
		&invoice.Notes,
		&invoice.DueDate,
		&invoice.CreatedAt,
	); err != nil {
		return nil, err
	}

	lines, err := r.fetchLines(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Lines = lines
	return &invoice, nil
}

func (r *invoiceRepository) fetchLines(ctx context.Context, invoiceID int64) ([]domain.InvoiceLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, invoice_id, type, reference_id, description, quantity, unit_price, line_total
         FROM invoice_lines WHERE invoice_id=$1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var line domain.InvoiceLine
		if err := rows.Scan(
			&line.ID,
			&line.InvoiceID,
			&line.Type,
			&line.ReferenceID,
			&line.Description,
			&line.Quantity,
			&line.UnitPrice,
			&line.LineTotal,
		); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *invoiceRepository) List(ctx context.Context, limit, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		if err := rows.Scan(
			&invoice.ID,
			&invoice.InvoiceNumber,
			&invoice.BookingID,
			&invoice.Subtotal,
			&invoice.TaxAmount,
			&invoice.TotalAmount,
			&invoice.PaidAmount,
			&invoice.Status,
			&invoice.Notes,
			&invoice.DueDate,
			&invoice.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, invoice)
	}
	return result, rows.Err()
}

func (r *invoiceRepository) RecordPayment(ctx context.Context, payment *domain.Payment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO payments (invoice_id, method, amount, reference, notes, created_by)
         VALUES ($1,$2,$3,$4,$5,$6)
         RETURNING id, created_at`,
		payment.InvoiceID,
		payment.Method,
		payment.Amount,
		payment.Reference,
		payment.Notes,
		payment.CreatedBy,
	).Scan(&payment.ID, &payment.CreatedAt)
}

func (r *invoiceRepository) ListPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, invoice_id, method, amount, reference, notes, created_by, created_at
         FROM payments WHERE invoice_id=$1 ORDER BY created_at`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.InvoiceID,
			&payment.Method,
			&payment.Amount,
			&payment.Reference,
			&payment.Notes,
			&payment.CreatedBy,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
