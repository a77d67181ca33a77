package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/navigation"
	"github.com/autofuellanka/portal-service/internal/repository"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

const sessionKey = "auth_session"

// Middleware validates bearer tokens and loads the caller's session.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Expired or malformed
// tokens and disabled accounts all map to 401.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("account not found")
		}
		return apperrors.MapError(err)
	}
	if !user.Enabled {
		return apperrors.NewUnauthorized("account disabled")
	}

	c.Locals(sessionKey, navigation.SessionFromUser(user))
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*navigation.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*navigation.Session)
	return sess, ok
}

// UserFromContext returns the caller's id and role for handlers that scope
// queries to the current account.
func UserFromContext(c *fiber.Ctx) (int64, domain.Role, bool) {
	sess, ok := SessionFromContext(c)
	if !ok {
		return 0, "", false
	}
	return sess.UserID, sess.Role, true
}
