package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// VehiclesHandler serves vehicle endpoints.
type VehiclesHandler struct {
	service *service.VehicleService
}

// NewVehiclesHandler constructs handler.
func NewVehiclesHandler(vehicleService *service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{service: vehicleService}
}

func vehicleInput(req dto.VehicleRequest) service.VehicleInput {
	return service.VehicleInput{
		Make:              req.Make,
		Model:             req.Model,
		PlateNumber:       req.PlateNumber,
		FuelType:          domain.FuelType(req.FuelType),
		YearOfManufacture: req.YearOfManufacture,
	}
}

// Create POST /vehicles registers a vehicle under the caller.
func (h *VehiclesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vehicle, err := h.service.Create(c.UserContext(), actor.UserID, vehicleInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewVehicleResponse(vehicle)})
}

// List GET /vehicles. Customers get their own fleet, staff get all.
func (h *VehiclesHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	vehicles, err := h.service.ListForActor(c.UserContext(), actor)
	if err != nil {
		return err
	}
	items := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		items = append(items, dto.NewVehicleResponse(&vehicles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /vehicles/:id.
func (h *VehiclesHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := h.service.Get(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponse(vehicle)})
}

// Update PUT /vehicles/:id.
func (h *VehiclesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vehicle, err := h.service.Update(c.UserContext(), actor, id, vehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleResponse(vehicle)})
}

// CreateType POST /vehicle-types.
func (h *VehiclesHandler) CreateType(c *fiber.Ctx) error {
	var req dto.VehicleTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vt := &domain.VehicleType{Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		vt.IsActive = *req.IsActive
	}
	if err := h.service.CreateType(c.UserContext(), vt); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewVehicleTypeResponse(vt)})
}

// UpdateType PUT /vehicle-types/:id.
func (h *VehiclesHandler) UpdateType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.VehicleTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vt := &domain.VehicleType{ID: id, Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		vt.IsActive = *req.IsActive
	}
	if err := h.service.UpdateType(c.UserContext(), vt); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVehicleTypeResponse(vt)})
}

// ListTypes GET /vehicle-types.
func (h *VehiclesHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.service.ListTypes(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.VehicleTypeResponse, 0, len(types))
	for i := range types {
		items = append(items, dto.NewVehicleTypeResponse(&types[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /vehicles/:id.
func (h *VehiclesHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), actor, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
