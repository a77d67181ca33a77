package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// InventoryHandler serves stock endpoints.
type InventoryHandler struct {
	service *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: inventoryService}
}

// CreateItem POST /inventory/items.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil || price.IsNegative() {
		return apperrors.NewValidationError("unit_price must be a non-negative decimal", nil)
	}

	item := &domain.InventoryItem{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		OnHand:      req.OnHand,
		MinQty:      req.MinQty,
		UnitPrice:   price,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.service.CreateItem(c.UserContext(), item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// UpdateItem PUT /inventory/items/:id.
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.service.GetItem(c.UserContext(), id)
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil || price.IsNegative() {
		return apperrors.NewValidationError("unit_price must be a non-negative decimal", nil)
	}

	item.Name = req.Name
	item.Category = req.Category
	item.MinQty = req.MinQty
	item.UnitPrice = price
	item.Description = req.Description
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.service.UpdateItem(c.UserContext(), item); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// ListItems GET /inventory/items.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		return err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewInventoryItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetItem GET /inventory/items/:id.
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.GetItem(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// RecordMove POST /inventory/moves.
func (h *InventoryHandler) RecordMove(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.StockMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ItemID <= 0 {
		return apperrors.NewValidationError("item_id required", nil)
	}

	move, err := h.service.RecordMove(c.UserContext(), actor, service.MoveInput{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		Type:      domain.StockMoveType(req.Type),
		Reference: req.Reference,
		Note:      req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewStockMoveResponse(move)})
}

// ListMoves GET /inventory/moves.
func (h *InventoryHandler) ListMoves(c *fiber.Ctx) error {
	itemID := int64(c.QueryInt("item_id", 0))
	moves, err := h.service.ListMoves(c.UserContext(), itemID)
	if err != nil {
		return err
	}
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for i := range moves {
		out = append(out, dto.NewStockMoveResponse(&moves[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}
