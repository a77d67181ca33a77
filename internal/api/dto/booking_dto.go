package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	VehicleID         *int64   `json:"vehicle_id"`
	ServiceTypeID     *int64   `json:"service_type_id"`
	LocationID        *int64   `json:"location_id"`
	Type              string   `json:"type"`
	StartTime         string   `json:"start_time"`
	FuelType          *string  `json:"fuel_type"`
	LitersRequested   *float64 `json:"liters_requested"`
	Description       string   `json:"description"`
	Urgency           string   `json:"urgency"`
	ContactPreference string   `json:"contact_preference"`
}

// ChangeBookingStatusRequest payload.
type ChangeBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse is the API view of a booking.
type BookingResponse struct {
	ID                int64      `json:"id"`
	CustomerID        int64      `json:"customer_id"`
	VehicleID         *int64     `json:"vehicle_id"`
	ServiceTypeID     *int64     `json:"service_type_id"`
	LocationID        *int64     `json:"location_id"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	FuelType          *string    `json:"fuel_type"`
	LitersRequested   *float64   `json:"liters_requested"`
	Description       string     `json:"description"`
	Urgency           string     `json:"urgency"`
	ContactPreference string     `json:"contact_preference"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(b *domain.Booking) BookingResponse {
	var fuelType *string
	if b.FuelType != nil {
		s := string(*b.FuelType)
		fuelType = &s
	}
	return BookingResponse{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		VehicleID:         b.VehicleID,
		ServiceTypeID:     b.ServiceTypeID,
		LocationID:        b.LocationID,
		Type:              string(b.Type),
		Status:            string(b.Status),
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		FuelType:          fuelType,
		LitersRequested:   b.LitersRequested,
		Description:       b.Description,
		Urgency:           b.Urgency,
		ContactPreference: b.ContactPreference,
		CreatedAt:         b.CreatedAt,
	}
}
