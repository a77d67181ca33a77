package domain

import "time"

// BookingType separates fuel-station visits from service-center appointments.
type BookingType string

const (
	BookingTypeFuel    BookingType = "FUEL"
	BookingTypeService BookingType = "SERVICE"
)

// BookingStatus enumerates the booking lifecycle.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is the aggregate for fuel and service appointments.
type Booking struct {
	ID                int64
	CustomerID        int64
	VehicleID         *int64
	ServiceTypeID     *int64
	LocationID        *int64
	Type              BookingType
	Status            BookingStatus
	StartTime         time.Time
	EndTime           *time.Time
	FuelType          *FuelType
	LitersRequested   *float64
	Description       string
	Urgency           string
	ContactPreference string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
