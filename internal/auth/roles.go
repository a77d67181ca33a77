package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/navigation"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// RequireRole ensures the session's role is one of the allowed roles.
// Denials surface as 403 naming the required roles, mirroring the guard's
// visible "access denied".
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)
		return applyDecision(c, navigation.Check(sess, false, allowed...))
	}
}

// RequirePage gates an API route with the allow-list of the page it backs,
// so HTTP enforcement and the navigation registry cannot drift apart.
func RequirePage(key navigation.PageKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)
		return applyDecision(c, navigation.CheckPage(sess, false, key))
	}
}

// RequireAuthenticated only demands a valid session.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)
		return applyDecision(c, navigation.Check(sess, false))
	}
}

func applyDecision(c *fiber.Ctx, decision navigation.Decision) error {
	switch decision.Kind {
	case navigation.DecisionAllowed:
		return c.Next()
	case navigation.DecisionDenied:
		required := make([]string, len(decision.Required))
		for i, r := range decision.Required {
			required[i] = string(r)
		}
		return apperrors.NewAccessDenied(required)
	default:
		return apperrors.NewUnauthorized("authentication required")
	}
}
