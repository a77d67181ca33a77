package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// BookingService coordinates the booking lifecycle.
type BookingService struct {
	bookings   repository.BookingRepository
	vehicles   repository.VehicleRepository
	services   repository.ServiceTypeRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles repositories for booking service.
type BookingDependencies struct {
	BookingRepo     repository.BookingRepository
	VehicleRepo     repository.VehicleRepository
	ServiceTypeRepo repository.ServiceTypeRepository
	Dispatcher      events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		vehicles:   deps.VehicleRepo,
		services:   deps.ServiceTypeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// BookingCreateInput describes the booking creation payload.
type BookingCreateInput struct {
	VehicleID         *int64
	ServiceTypeID     *int64
	LocationID        *int64
	Type              domain.BookingType
	StartTime         time.Time
	FuelType          *domain.FuelType
	LitersRequested   *float64
	Description       string
	Urgency           string
	ContactPreference string
}

// Create validates and persists a booking for a customer.
func (s *BookingService) Create(ctx context.Context, actor events.Actor, input BookingCreateInput) (*domain.Booking, error) {
	switch input.Type {
	case domain.BookingTypeFuel:
		if input.FuelType == nil || input.LitersRequested == nil {
			return nil, util.NewValidationError("fuel bookings require fuel_type and liters_requested", nil)
		}
		if *input.LitersRequested <= 0 {
			return nil, util.NewValidationError("liters_requested must be positive", nil)
		}
	case domain.BookingTypeService:
		if input.ServiceTypeID == nil {
			return nil, util.NewValidationError("service bookings require service_type_id", nil)
		}
		st, err := s.services.GetByID(ctx, *input.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		if !st.IsActive {
			return nil, util.NewValidationError("service type is not offered", map[string]any{"service_type_id": st.ID})
		}
	default:
		return nil, util.NewValidationError("unknown booking type", map[string]any{"type": string(input.Type)})
	}

	if input.VehicleID != nil {
		vehicle, err := s.vehicles.GetByID(ctx, *input.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle.OwnerID != actor.UserID && actor.Role == domain.RoleCustomer {
			return nil, util.NewForbidden("vehicle belongs to another customer")
		}
	}

	booking := &domain.Booking{
		CustomerID:        actor.UserID,
		VehicleID:         input.VehicleID,
		ServiceTypeID:     input.ServiceTypeID,
		LocationID:        input.LocationID,
		Type:              input.Type,
		Status:            domain.BookingStatusPending,
		StartTime:         input.StartTime,
		FuelType:          input.FuelType,
		LitersRequested:   input.LitersRequested,
		Description:       input.Description,
		Urgency:           input.Urgency,
		ContactPreference: input.ContactPreference,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, actor, events.BookingCreatedPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Type:       booking.Type,
	})
	return booking, nil
}

// GetForActor loads a booking, restricting customers to their own records.
func (s *BookingService) GetForActor(ctx context.Context, actor events.Actor, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer && booking.CustomerID != actor.UserID {
		return nil, util.NewNotFound("booking", map[string]any{"id": id})
	}
	return booking, nil
}

// List applies the filter; customers are always scoped to themselves.
func (s *BookingService) List(ctx context.Context, actor events.Actor, filter repository.BookingFilter) ([]domain.Booking, error) {
	if actor.Role == domain.RoleCustomer {
		filter.CustomerID = &actor.UserID
	}
	return s.bookings.List(ctx, filter)
}

var bookingTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusPending:   {domain.BookingStatusConfirmed, domain.BookingStatusCancelled},
	domain.BookingStatusConfirmed: {domain.BookingStatusCompleted, domain.BookingStatusCancelled},
}

// ChangeStatus moves a booking along its lifecycle. Customers may only cancel
// their own pending bookings; other transitions are staff operations.
func (s *BookingService) ChangeStatus(ctx context.Context, actor events.Actor, id int64, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleCustomer {
		if booking.CustomerID != actor.UserID {
			return nil, util.NewNotFound("booking", map[string]any{"id": id})
		}
		if next != domain.BookingStatusCancelled {
			return nil, util.NewForbidden("customers may only cancel bookings")
		}
	}

	if !transitionAllowed(booking.Status, next) {
		return nil, util.NewConflict("invalid status transition", map[string]any{
			"from": string(booking.Status),
			"to":   string(next),
		})
	}

	old := booking.Status
	booking.Status = next
	if next == domain.BookingStatusCompleted && booking.EndTime == nil {
		now := time.Now()
		booking.EndTime = &now
	}
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingStatusChanged, actor, events.BookingStatusChangedPayload{
		BookingID: booking.ID,
		OldStatus: old,
		NewStatus: next,
	})
	return booking, nil
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
