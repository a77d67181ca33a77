package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// UsersHandler serves the user-management endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// Create POST /users provisions an account with a role. Only an ADMIN caller
// may create another ADMIN.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": req.Role})
	}
	if role == domain.RoleAdmin && actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("only admins may create admin accounts")
	}

	user, err := h.service.Create(c.UserContext(), service.UserCreateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Role:       role,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List GET /users pages through all accounts, or filters to one role with
// ?role=, backing the customer directory and technician roster views.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	if roleParam := c.Query("role"); roleParam != "" {
		role, ok := domain.ParseRole(roleParam)
		if !ok {
			return apperrors.NewValidationError("unknown role", map[string]any{"role": roleParam})
		}
		users, err := h.service.ListByRole(c.UserContext(), role)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": userResponses(users)})
	}

	users, err := h.service.List(c.UserContext(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

// Get GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Update PUT /users/:id edits profile fields and the enabled flag.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.Update(c.UserContext(), id, service.UserUpdateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Enabled:    req.Enabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if id == actor.UserID {
		return apperrors.NewValidationError("cannot delete your own account", nil)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// ListTechnicians GET /technicians backs the technician roster view.
func (h *UsersHandler) ListTechnicians(c *fiber.Ctx) error {
	users, err := h.service.ListByRole(c.UserContext(), domain.RoleTechnician)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

// ListCustomers GET /customers backs the customer directory view.
func (h *UsersHandler) ListCustomers(c *fiber.Ctx) error {
	users, err := h.service.ListByRole(c.UserContext(), domain.RoleCustomer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponses(users)})
}

func userResponses(users []domain.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return items
}
