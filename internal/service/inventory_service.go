package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// InventoryService coordinates stock tracking.
type InventoryService struct {
	inventory  repository.InventoryRepository
	dispatcher events.Dispatcher
}

// InventoryDependencies bundles repositories for inventory service.
type InventoryDependencies struct {
	InventoryRepo repository.InventoryRepository
	Dispatcher    events.Dispatcher
}

// NewInventoryService constructs the service.
func NewInventoryService(deps InventoryDependencies) *InventoryService {
	return &InventoryService{
		inventory:  deps.InventoryRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateItem registers a new stocked item.
func (s *InventoryService) CreateItem(ctx context.Context, item *domain.InventoryItem) error {
	if item.SKU == "" || item.Name == "" {
		return util.NewValidationError("sku and name are required", nil)
	}
	if item.OnHand < 0 || item.MinQty < 0 {
		return util.NewValidationError("quantities must not be negative", nil)
	}
	if _, err := s.inventory.GetItemBySKU(ctx, item.SKU); err == nil {
		return util.NewConflict("sku already exists", map[string]any{"sku": item.SKU})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return s.inventory.CreateItem(ctx, item)
}

// UpdateItem edits item master data. On-hand counts change only via moves.
func (s *InventoryService) UpdateItem(ctx context.Context, item *domain.InventoryItem) error {
	if item.MinQty < 0 {
		return util.NewValidationError("min_qty must not be negative", nil)
	}
	return s.inventory.UpdateItem(ctx, item)
}

// GetItem loads one item.
func (s *InventoryService) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return s.inventory.GetItemByID(ctx, id)
}

// ListItems lists the catalog.
func (s *InventoryService) ListItems(ctx context.Context, activeOnly bool) ([]domain.InventoryItem, error) {
	return s.inventory.ListItems(ctx, activeOnly)
}

// MoveInput describes a stock movement request.
type MoveInput struct {
	ItemID    int64
	Quantity  int
	Type      domain.StockMoveType
	Reference string
	Note      string
}

// RecordMove applies a movement to stock. RECEIVE must be positive, ISSUE
// negative; ADJUST takes either sign. Stock never goes below zero.
func (s *InventoryService) RecordMove(ctx context.Context, actor events.Actor, input MoveInput) (*domain.StockMove, error) {
	if input.Quantity == 0 {
		return nil, util.NewValidationError("quantity must not be zero", nil)
	}
	switch input.Type {
	case domain.StockMoveReceive:
		if input.Quantity < 0 {
			return nil, util.NewValidationError("receive quantity must be positive", nil)
		}
	case domain.StockMoveIssue:
		if input.Quantity > 0 {
			return nil, util.NewValidationError("issue quantity must be negative", nil)
		}
	case domain.StockMoveAdjust:
	default:
		return nil, util.NewValidationError("unknown move type", map[string]any{"type": string(input.Type)})
	}

	move := &domain.StockMove{
		ItemID:    input.ItemID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		Reference: input.Reference,
		Note:      input.Note,
		CreatedBy: strconv.FormatInt(actor.UserID, 10),
	}
	if err := s.inventory.RecordMove(ctx, move); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewConflict("insufficient stock", map[string]any{"item_id": input.ItemID})
		}
		return nil, err
	}

	if item, err := s.inventory.GetItemByID(ctx, input.ItemID); err == nil && item.LowStock() {
		s.publish(ctx, actor, events.InventoryBelowMinimumPayload{
			ItemID: item.ID,
			SKU:    item.SKU,
			OnHand: item.OnHand,
			MinQty: item.MinQty,
		})
	}
	return move, nil
}

// ListMoves lists movements, optionally for one item.
func (s *InventoryService) ListMoves(ctx context.Context, itemID int64) ([]domain.StockMove, error) {
	return s.inventory.ListMoves(ctx, itemID)
}

func (s *InventoryService) publish(ctx context.Context, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventInventoryBelowMinimum,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
