package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is a bookable service offering with a base price in LKR.
type ServiceType struct {
	ID          int64
	Code        string
	Name        string
	Description string
	BasePrice   decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LocationType distinguishes fuel stations from service centers.
type LocationType string

const (
	LocationFuelStation   LocationType = "FUEL_STATION"
	LocationServiceCenter LocationType = "SERVICE_CENTER"
)

// Location is a physical site bookings are made against.
type Location struct {
	ID      int64
	Name    string
	Address string
	Type    LocationType
}
