package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/navigation"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// BadgeSource supplies the pending-jobs count for the technician badge.
type BadgeSource interface {
	Pending(ctx context.Context) int
}

// NavigationHandler serves the role-scoped menu and page access decisions.
type NavigationHandler struct {
	badges BadgeSource
}

// NewNavigationHandler constructs handler.
func NewNavigationHandler(badges BadgeSource) *NavigationHandler {
	return &NavigationHandler{badges: badges}
}

// Menu GET /navigation/menu returns the caller's navigation links. Only the
// technician menu carries the badge.
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	pending := 0
	if sess.Role == domain.RoleTechnician && h.badges != nil {
		pending = h.badges.Pending(c.UserContext())
	}
	return c.JSON(fiber.Map{"data": dto.MenuResponse{Items: navigation.MenuFor(sess.Role, pending)}})
}

// Pages GET /navigation/pages lists every page the caller may open.
func (h *NavigationHandler) Pages(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": navigation.AccessiblePages(sess.Role)})
}

// CheckPage GET /navigation/pages/:key reports whether the caller may open
// one page, naming the required roles on denial.
func (h *NavigationHandler) CheckPage(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	key := navigation.PageKey(c.Params("key"))
	if !navigation.Known(key) {
		return apperrors.NewNotFound("page", map[string]any{"page": string(key)})
	}

	decision := navigation.CheckPage(sess, false, key)
	resp := dto.PageAccessResponse{
		Page:       string(key),
		Accessible: decision.Allowed(),
	}
	if decision.Kind == navigation.DecisionDenied {
		for _, role := range decision.Required {
			resp.Required = append(resp.Required, string(role))
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Restore POST /navigation/restore resolves a stored fragment into a landing
// page the way a reload does: malformed or inaccessible fragments fall back
// to home silently.
func (h *NavigationHandler) Restore(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req struct {
		Fragment string `json:"fragment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	router := navigation.NewRouter(nil, nil)
	router.SetSession(sess)
	result := router.Restore(req.Fragment)

	resp := dto.RestoreResponse{
		Fragment:   result.Page.Fragment(),
		Page:       string(result.Page.Key),
		InvoiceID:  result.Page.InvoiceID,
		Redirected: result.Redirected,
	}
	return c.JSON(fiber.Map{"data": resp})
}
