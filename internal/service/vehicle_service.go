package service

import (
	"context"
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// VehicleService manages customer vehicles.
type VehicleService struct {
	vehicles repository.VehicleRepository
}

// NewVehicleService constructs the service.
func NewVehicleService(vehicles repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// VehicleInput describes vehicle fields.
type VehicleInput struct {
	Make              string
	Model             string
	PlateNumber       string
	FuelType          domain.FuelType
	YearOfManufacture int
}

func (in VehicleInput) validate() error {
	if in.PlateNumber == "" {
		return util.NewValidationError("plate_number is required", nil)
	}
	if _, ok := domain.ParseFuelType(string(in.FuelType)); !ok {
		return util.NewValidationError("unknown fuel type", map[string]any{"fuel_type": string(in.FuelType)})
	}
	if in.YearOfManufacture < 1950 || in.YearOfManufacture > time.Now().Year()+1 {
		return util.NewValidationError("year_of_manufacture out of range", nil)
	}
	return nil
}

// Create registers a vehicle under the given owner.
func (s *VehicleService) Create(ctx context.Context, ownerID int64, input VehicleInput) (*domain.Vehicle, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	vehicle := &domain.Vehicle{
		OwnerID:           ownerID,
		Make:              input.Make,
		Model:             input.Model,
		PlateNumber:       input.PlateNumber,
		FuelType:          input.FuelType,
		YearOfManufacture: input.YearOfManufacture,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update edits a vehicle. Customers may only touch their own.
func (s *VehicleService) Update(ctx context.Context, actor events.Actor, id int64, input VehicleInput) (*domain.Vehicle, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	vehicle, err := s.getScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	vehicle.Make = input.Make
	vehicle.Model = input.Model
	vehicle.PlateNumber = input.PlateNumber
	vehicle.FuelType = input.FuelType
	vehicle.YearOfManufacture = input.YearOfManufacture

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a vehicle. Customers may only remove their own.
func (s *VehicleService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	if _, err := s.getScoped(ctx, actor, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

// Get loads a vehicle with ownership scoping.
func (s *VehicleService) Get(ctx context.Context, actor events.Actor, id int64) (*domain.Vehicle, error) {
	return s.getScoped(ctx, actor, id)
}

// ListForActor returns the caller's vehicles, or all vehicles for staff.
func (s *VehicleService) ListForActor(ctx context.Context, actor events.Actor) ([]domain.Vehicle, error) {
	if actor.Role == domain.RoleCustomer {
		return s.vehicles.ListByOwner(ctx, actor.UserID)
	}
	return s.vehicles.List(ctx)
}

// ListByOwner returns one customer's vehicles for staff views.
func (s *VehicleService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	return s.vehicles.ListByOwner(ctx, ownerID)
}

// CreateType adds a vehicle-type catalog entry.
func (s *VehicleService) CreateType(ctx context.Context, vt *domain.VehicleType) error {
	if vt.Name == "" {
		return util.NewValidationError("name is required", nil)
	}
	return s.vehicles.CreateType(ctx, vt)
}

// UpdateType edits a vehicle-type catalog entry.
func (s *VehicleService) UpdateType(ctx context.Context, vt *domain.VehicleType) error {
	if vt.Name == "" {
		return util.NewValidationError("name is required", nil)
	}
	return s.vehicles.UpdateType(ctx, vt)
}

// ListTypes lists the vehicle-type catalog.
func (s *VehicleService) ListTypes(ctx context.Context) ([]domain.VehicleType, error) {
	return s.vehicles.ListTypes(ctx)
}

func (s *VehicleService) getScoped(ctx context.Context, actor events.Actor, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer && vehicle.OwnerID != actor.UserID {
		return nil, util.NewNotFound("vehicle", map[string]any{"id": id})
	}
	return vehicle, nil
}
