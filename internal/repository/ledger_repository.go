package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// LedgerFilter narrows ledger queries to a date window and/or account.
type LedgerFilter struct {
	From    *time.Time
	To      *time.Time
	Account string
}

// AccountBalance is the aggregated position of one account.
type AccountBalance struct {
	Account string
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// Net returns debits minus credits.
func (b AccountBalance) Net() decimal.Decimal {
	return b.Debits.Sub(b.Credits)
}

// LedgerRepository encapsulates finance ledger persistence.
type LedgerRepository interface {
	// CreateEntries inserts a posting's entries atomically.
	CreateEntries(ctx context.Context, entries []domain.LedgerEntry) error
	List(ctx context.Context, filter LedgerFilter) ([]domain.LedgerEntry, error)
	Balances(ctx context.Context, filter LedgerFilter) ([]AccountBalance, error)
}

type ledgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository instantiates repository.
func NewLedgerRepository(pool *pgxpool.Pool) LedgerRepository {
	return &ledgerRepository{pool: pool}
}

func (r *ledgerRepository) CreateEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for i := range entries {
		entry := &entries[i]
		if err := tx.QueryRow(ctx,
			`INSERT INTO finance_ledger (transaction_date, account, type, amount, reference, description, created_by)
             VALUES ($1,$2,$3,$4,$5,$6,$7)
             RETURNING id, created_at`,
			entry.TransactionDate,
			entry.Account,
			entry.Type,
			entry.Amount,
			entry.Reference,
			entry.Description,
			entry.CreatedBy,
		).Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func ledgerClauses(filter LedgerFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("transaction_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("transaction_date <= $%d", len(args)))
	}
	if filter.Account != "" {
		args = append(args, filter.Account)
		clauses = append(clauses, fmt.Sprintf("account = $%d", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

func (r *ledgerRepository) List(ctx context.Context, filter LedgerFilter) ([]domain.LedgerEntry, error) {
	where, args := ledgerClauses(filter)
	query := fmt.Sprintf(
		`SELECT id, transaction_date, account, type, amount, reference, description, created_by, created_at
         FROM finance_ledger WHERE %s ORDER BY transaction_date DESC, id DESC`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.TransactionDate,
			&entry.Account,
			&entry.Type,
			&entry.Amount,
			&entry.Reference,
			&entry.Description,
			&entry.CreatedBy,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *ledgerRepository) Balances(ctx context.Context, filter LedgerFilter) ([]AccountBalance, error) {
	where, args := ledgerClauses(filter)
	query := fmt.Sprintf(
		`SELECT account,
                COALESCE(SUM(amount) FILTER (WHERE type='DEBIT'), 0),
                COALESCE(SUM(amount) FILTER (WHERE type='CREDIT'), 0)
         FROM finance_ledger WHERE %s GROUP BY account ORDER BY account`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AccountBalance
	for rows.Next() {
		var balance AccountBalance
		if err := rows.Scan(&balance.Account, &balance.Debits, &balance.Credits); err != nil {
			return nil, err
		}
		result = append(result, balance)
	}
	return result, rows.Err()
}
