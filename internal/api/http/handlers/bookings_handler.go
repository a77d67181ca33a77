package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// BookingsHandler serves booking endpoints for customers and staff.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

func actorFromContext(c *fiber.Ctx) (events.Actor, error) {
	userID, role, ok := auth.UserFromContext(c)
	if !ok {
		return events.Actor{}, apperrors.NewUnauthorized("authentication required")
	}
	return events.Actor{UserID: userID, Role: role}, nil
}

// Create POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return apperrors.NewValidationError("start_time must be RFC3339", nil)
	}

	input := service.BookingCreateInput{
		VehicleID:         req.VehicleID,
		ServiceTypeID:     req.ServiceTypeID,
		LocationID:        req.LocationID,
		Type:              domain.BookingType(req.Type),
		StartTime:         startTime,
		LitersRequested:   req.LitersRequested,
		Description:       req.Description,
		Urgency:           req.Urgency,
		ContactPreference: req.ContactPreference,
	}
	if req.FuelType != nil {
		ft, ok := domain.ParseFuelType(*req.FuelType)
		if !ok {
			return apperrors.NewValidationError("unknown fuel type", map[string]any{"fuel_type": *req.FuelType})
		}
		input.FuelType = &ft
	}

	booking, err := h.service.Create(c.UserContext(), actor, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// List GET /bookings. Customers see their own; staff see all, filterable.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	filter := repository.BookingFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if status := c.Query("status"); status != "" {
		filter.Statuses = []domain.BookingStatus{domain.BookingStatus(status)}
	}
	if bookingType := c.Query("type"); bookingType != "" {
		bt := domain.BookingType(bookingType)
		filter.Type = &bt
	}
	if customer := c.Query("customer_id"); customer != "" && actor.Role != domain.RoleCustomer {
		id, err := strconv.ParseInt(customer, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("customer_id must be numeric", nil)
		}
		filter.CustomerID = &id
	}

	bookings, err := h.service.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, dto.NewBookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.service.GetForActor(c.UserContext(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// ChangeStatus PATCH /bookings/:id/status.
func (h *BookingsHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ChangeBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.service.ChangeStatus(c.UserContext(), actor, id, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"param": param})
	}
	return id, nil
}
