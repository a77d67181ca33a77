package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// InventoryItemRequest payload for create and update.
type InventoryItemRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	OnHand      int    `json:"on_hand"`
	MinQty      int    `json:"min_qty"`
	UnitPrice   string `json:"unit_price"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// StockMoveRequest payload.
type StockMoveRequest struct {
	ItemID    int64  `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type"`
	Reference string `json:"reference"`
	Note      string `json:"note"`
}

// InventoryItemResponse is the API view of an item.
type InventoryItemResponse struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	OnHand      int       `json:"on_hand"`
	MinQty      int       `json:"min_qty"`
	UnitPrice   string    `json:"unit_price"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewInventoryItemResponse maps a domain item.
func NewInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          i.ID,
		SKU:         i.SKU,
		Name:        i.Name,
		Category:    i.Category,
		OnHand:      i.OnHand,
		MinQty:      i.MinQty,
		UnitPrice:   i.UnitPrice.StringFixed(2),
		Description: i.Description,
		IsActive:    i.IsActive,
		LowStock:    i.LowStock(),
		CreatedAt:   i.CreatedAt,
	}
}

// StockMoveResponse is the API view of a movement.
type StockMoveResponse struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStockMoveResponse maps a domain stock move.
func NewStockMoveResponse(m *domain.StockMove) StockMoveResponse {
	return StockMoveResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		Type:      string(m.Type),
		Reference: m.Reference,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
