package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/auth"
	"github.com/autofuellanka/portal-service/internal/config"
	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput describes the self-service signup payload.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// Register creates a customer account. Self-service signup always gets the
// CUSTOMER role; privileged accounts are created through user management.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, "", time.Time{}, util.NewValidationError("email and password are required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, util.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
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
		Role:         domain.RoleCustomer,
		Enabled:      true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates any portal account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !user.Enabled {
		return nil, "", time.Time{}, util.NewUnauthorized("account disabled")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, current); err != nil {
		return util.NewUnauthorized("current password does not match")
	}
	if len(next) < 8 {
		return util.NewValidationError("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}
