package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// JobsHandler serves technician work-queue endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// Assign POST /jobs assigns a booking to a technician.
func (h *JobsHandler) Assign(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.AssignJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.BookingID <= 0 || req.TechnicianID <= 0 {
		return apperrors.NewValidationError("booking_id and technician_id required", nil)
	}

	job, err := h.service.Assign(c.UserContext(), actor, req.BookingID, req.TechnicianID, req.Notes)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// List GET /jobs. Technicians see their own queue; operations roles see all.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var jobs []domain.Job
	if actor.Role == domain.RoleTechnician {
		jobs, err = h.service.ListForTechnician(c.UserContext(), actor.UserID)
	} else {
		jobs, err = h.service.List(c.UserContext())
	}
	if err != nil {
		return err
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ChangeStatus PATCH /jobs/:id/status.
func (h *JobsHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ChangeJobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.ChangeStatus(c.UserContext(), actor, id, domain.JobStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// PendingCount GET /jobs/pending/count returns the live badge number.
func (h *JobsHandler) PendingCount(c *fiber.Ctx) error {
	count, err := h.service.CountPending(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"pending": count}})
}
