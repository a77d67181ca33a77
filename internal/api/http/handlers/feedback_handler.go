package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// FeedbackHandler serves customer feedback endpoints.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: feedbackService}
}

// Submit POST /feedback rates a completed booking.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	fb, err := h.service.Submit(c.UserContext(), actor, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewFeedbackResponse(fb)})
}

// List GET /feedback. Customers get their own entries, staff get all.
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListForActor(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponses(entries)})
}

// Recent GET /feedback/recent returns the latest entries for the home page.
func (h *FeedbackHandler) Recent(c *fiber.Ctx) error {
	entries, err := h.service.Recent(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponses(entries)})
}

// Stats GET /feedback/stats.
func (h *FeedbackHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FeedbackStatsResponse{
		Total:         stats.Total,
		AverageRating: stats.AverageRating,
	}})
}

// GetByBooking GET /feedback/booking/:booking_id. A booking with no feedback
// yet answers with exists=false rather than 404, so forms can check first.
func (h *FeedbackHandler) GetByBooking(c *fiber.Ctx) error {
	bookingID, err := parseID(c, "booking_id")
	if err != nil {
		return err
	}

	fb, err := h.service.GetByBooking(c.UserContext(), bookingID)
	if err != nil {
		return err
	}
	if fb == nil {
		return c.JSON(fiber.Map{"data": fiber.Map{"exists": false}})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"exists": true, "feedback": dto.NewFeedbackResponse(fb)}})
}

// Update PUT /feedback/:id.
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	fb, err := h.service.Update(c.UserContext(), actor, id, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFeedbackResponse(fb)})
}

// Delete DELETE /feedback/:id.
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
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

func feedbackResponses(entries []domain.Feedback) []dto.FeedbackResponse {
	items := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewFeedbackResponse(&entries[i]))
	}
	return items
}
