package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autofuellanka/portal-service/internal/api/dto"
	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/service"
	apperrors "github.com/autofuellanka/portal-service/pkg/util"
)

// AuthHandler serves registration, login and password changes.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Register POST /auth/register. Signup always creates a customer account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.service.Register(c.UserContext(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.NewUserResponse(user),
	}})
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.NewUserResponse(user),
	}})
}

// ChangePassword POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, _, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.service.ChangePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}

// Me GET /auth/me returns the caller's session view.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"user_id":    sess.UserID,
		"email":      sess.Email,
		"first_name": sess.FirstName,
		"role":       sess.Role,
	}})
}
