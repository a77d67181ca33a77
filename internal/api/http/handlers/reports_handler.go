package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/service"
)

// ReportsHandler serves the operations dashboard summary and CSV exports.
type ReportsHandler struct {
	service *service.ReportsService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportsService *service.ReportsService) *ReportsHandler {
	return &ReportsHandler{service: reportsService}
}

// Summary GET /reports/summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// InventoryCSV GET /reports/inventory.csv.
func (h *ReportsHandler) InventoryCSV(c *fiber.Ctx) error {
	data, err := h.service.InventoryCSV(c.UserContext())
	if err != nil {
		return err
	}
	return sendCSV(c, "inventory", data)
}

// CustomersCSV GET /reports/customers.csv.
func (h *ReportsHandler) CustomersCSV(c *fiber.Ctx) error {
	data, err := h.service.CustomersCSV(c.UserContext())
	if err != nil {
		return err
	}
	return sendCSV(c, "customers", data)
}

// BookingsCSV GET /reports/bookings.csv.
func (h *ReportsHandler) BookingsCSV(c *fiber.Ctx) error {
	data, err := h.service.BookingsCSV(c.UserContext())
	if err != nil {
		return err
	}
	return sendCSV(c, "bookings", data)
}

func sendCSV(c *fiber.Ctx, report string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.csv", report, time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}
