package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem tracks a stocked part or consumable.
type InventoryItem struct {
	ID          int64
	SKU         string
	Name        string
	Category    string
	OnHand      int
	MinQty      int
	UnitPrice   decimal.Decimal
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.OnHand <= i.MinQty
}

// StockMoveType enumerates inventory movements.
type StockMoveType string

const (
	StockMoveReceive StockMoveType = "RECEIVE"
	StockMoveIssue   StockMoveType = "ISSUE"
	StockMoveAdjust  StockMoveType = "ADJUST"
)

// StockMove is an immutable inventory movement record. Quantity is positive
// for RECEIVE and negative for ISSUE; ADJUST may be either sign.
type StockMove struct {
	ID        int64
	ItemID    int64
	Quantity  int
	Type      StockMoveType
	Reference string
	Note      string
	CreatedBy string
	CreatedAt time.Time
}
