package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// UserService backs the admin user-management screens.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserCreateInput describes an admin-created account.
type UserCreateInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Role       domain.Role
}

// Create provisions an account with any role. Only ADMIN may mint another
// ADMIN; the handler enforces that before calling here.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, util.NewValidationError("email and password are required", nil)
	}
	if _, ok := domain.ParseRole(string(input.Role)); !ok {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": string(input.Role)})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		PostalCode:   input.PostalCode,
		Role:         input.Role,
		Enabled:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdateInput describes editable profile fields.
type UserUpdateInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Enabled    *bool
}

// Update edits profile fields and the enabled flag. Role and email stay
// fixed after creation.
func (s *UserService) Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Address = input.Address
	user.City = input.City
	user.PostalCode = input.PostalCode
	if input.Enabled != nil {
		user.Enabled = *input.Enabled
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get loads one account.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// List pages through all accounts.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// ListByRole filters accounts to one role, e.g. the technician roster or the
// customer directory.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.users.ListByRole(ctx, role)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
