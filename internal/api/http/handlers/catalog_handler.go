package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// CatalogHandler serves the service-type catalog and locations.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// CreateServiceType POST /service-types.
func (h *CatalogHandler) CreateServiceType(c *fiber.Ctx) error {
	var req dto.ServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return apperrors.NewValidationError("base_price must be a decimal", nil)
	}

	st := &domain.ServiceType{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := h.service.CreateServiceType(c.UserContext(), st); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewServiceTypeResponse(st)})
}

// UpdateServiceType PUT /service-types/:id.
func (h *CatalogHandler) UpdateServiceType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	st, err := h.service.GetServiceType(c.UserContext(), id)
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return apperrors.NewValidationError("base_price must be a decimal", nil)
	}

	st.Name = req.Name
	st.Description = req.Description
	st.BasePrice = price
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := h.service.UpdateServiceType(c.UserContext(), st); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewServiceTypeResponse(st)})
}

// ListServiceTypes GET /service-types. Customers only see active offerings.
func (h *CatalogHandler) ListServiceTypes(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	activeOnly := actor.Role == domain.RoleCustomer || c.QueryBool("active", false)

	types, err := h.service.ListServiceTypes(c.UserContext(), activeOnly)
	if err != nil {
		return err
	}
	items := make([]dto.ServiceTypeResponse, 0, len(types))
	for i := range types {
		items = append(items, dto.NewServiceTypeResponse(&types[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListLocations GET /locations.
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		items = append(items, dto.NewLocationResponse(&locations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
