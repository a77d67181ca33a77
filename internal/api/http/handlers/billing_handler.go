package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// BillingHandler serves invoice, payment and ledger endpoints.
type BillingHandler struct {
	service *service.BillingService
}

// NewBillingHandler constructs handler.
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{service: billingService}
}

// IssueInvoice POST /invoices.
func (h *BillingHandler) IssueInvoice(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.IssueInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.BookingID <= 0 {
		return apperrors.NewValidationError("booking_id required", nil)
	}

	invoice, err := h.service.IssueInvoice(c.UserContext(), actor, req.BookingID, req.Notes, req.DueDate)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}

// ListInvoices GET /invoices.
func (h *BillingHandler) ListInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.ListInvoices(c.UserContext(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, dto.NewInvoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetInvoice GET /invoices/:id returns the invoice with its lines, backing
// the invoice detail page.
func (h *BillingHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	invoice, err := h.service.GetInvoice(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}

// RecordPayment POST /invoices/:id/payments.
func (h *BillingHandler) RecordPayment(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		return apperrors.NewValidationError("unknown payment method", map[string]any{"method": req.Method})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return apperrors.NewValidationError("amount must be a decimal", nil)
	}

	invoice, err := h.service.RecordPayment(c.UserContext(), actor, service.PaymentInput{
		InvoiceID: id,
		Method:    method,
		Amount:    amount,
		Reference: req.Reference,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewInvoiceResponse(invoice)})
}

// ListPayments GET /invoices/:id/payments.
func (h *BillingHandler) ListPayments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	payments, err := h.service.ListPayments(c.UserContext(), id)
	if err != nil {
		return err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, dto.NewPaymentResponse(&payments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Ledger GET /ledger lists postings, filterable by window and account.
func (h *BillingHandler) Ledger(c *fiber.Ctx) error {
	filter, err := ledgerFilter(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Ledger(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewLedgerEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Balances GET /ledger/balances aggregates per-account positions.
func (h *BillingHandler) Balances(c *fiber.Ctx) error {
	filter, err := ledgerFilter(c)
	if err != nil {
		return err
	}

	balances, err := h.service.Balances(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.AccountBalanceResponse, 0, len(balances))
	for _, b := range balances {
		items = append(items, dto.AccountBalanceResponse{
			Account: b.Account,
			Debits:  b.Debits.StringFixed(2),
			Credits: b.Credits.StringFixed(2),
			Net:     b.Net().StringFixed(2),
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func ledgerFilter(c *fiber.Ctx) (repository.LedgerFilter, error) {
	filter := repository.LedgerFilter{Account: c.Query("account")}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, apperrors.NewValidationError("from must be RFC3339", nil)
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, apperrors.NewValidationError("to must be RFC3339", nil)
		}
		filter.To = &t
	}
	return filter, nil
}
