package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// InventoryRepository encapsulates inventory item and stock move persistence.
type InventoryRepository interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem) error
	UpdateItem(ctx context.Context, item *domain.InventoryItem) error
	GetItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	GetItemBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, activeOnly bool) ([]domain.InventoryItem, error)
	// RecordMove inserts the move and applies its quantity to the item's
	// on-hand count in one transaction, failing if the result would go
	// negative.
	RecordMove(ctx context.Context, move *domain.StockMove) error
	ListMoves(ctx context.Context, itemID int64) ([]domain.StockMove, error)
}

type inventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository instantiates repository.
func NewInventoryRepository(pool *pgxpool.Pool) InventoryRepository {
	return &inventoryRepository{pool: pool}
}

const itemColumns = `id, sku, name, category, on_hand, min_qty, unit_price, description, is_active, created_at, updated_at`

func (r *inventoryRepository) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	const query = `
        INSERT INTO inventory_items (sku, name, category, on_hand, min_qty, unit_price, description, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.SKU,
		item.Name,
		item.Category,
		item.OnHand,
		item.MinQty,
		item.UnitPrice,
		item.Description,
		item.IsActive,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	const query = `
        UPDATE inventory_items SET name=$1, category=$2, min_qty=$3, unit_price=$4,
            description=$5, is_active=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		item.Name,
		item.Category,
		item.MinQty,
		item.UnitPrice,
		item.Description,
		item.IsActive,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return r.fetchItem(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id=$1`, id)
}

func (r *inventoryRepository) GetItemBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error) {
	return r.fetchItem(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE sku=$1`, sku)
}

func (r *inventoryRepository) fetchItem(ctx context.Context, query string, arg any) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&item.ID,
		&item.SKU,
		&item.Name,
		&item.Category,
		&item.OnHand,
		&item.MinQty,
		&item.UnitPrice,
		&item.Description,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) ListItems(ctx context.Context, activeOnly bool) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sku`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(
			&item.ID,
			&item.SKU,
			&item.Name,
			&item.Category,
			&item.OnHand,
			&item.MinQty,
			&item.UnitPrice,
			&item.Description,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *inventoryRepository) RecordMove(ctx context.Context, move *domain.StockMove) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// The CHECK constraint on on_hand backs this up at the schema level.
	cmd, err := tx.Exec(ctx,
		`UPDATE inventory_items SET on_hand = on_hand + $1, updated_at=NOW()
         WHERE id=$2 AND on_hand + $1 >= 0`,
		move.Quantity, move.ItemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.QueryRow(ctx,
		`INSERT INTO stock_moves (item_id, quantity, type, reference, note, created_by)
         VALUES ($1,$2,$3,$4,$5,$6)
         RETURNING id, created_at`,
		move.ItemID,
		move.Quantity,
		move.Type,
		move.Reference,
		move.Note,
		move.CreatedBy,
	).Scan(&move.ID, &move.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *inventoryRepository) ListMoves(ctx context.Context, itemID int64) ([]domain.StockMove, error) {
	query := `SELECT id, item_id, quantity, type, reference, note, created_by, created_at
              FROM stock_moves`
	args := []any{}
	if itemID > 0 {
		query += ` WHERE item_id=$1`
		args = append(args, itemID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StockMove
	for rows.Next() {
		var move domain.StockMove
		if err := rows.Scan(
			&move.ID,
			&move.ItemID,
			&move.Quantity,
			&move.Type,
			&move.Reference,
			&move.Note,
			&move.CreatedBy,
			&move.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, move)
	}
	return result, rows.Err()
}
