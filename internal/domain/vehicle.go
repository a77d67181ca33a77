package domain

import "time"

// Vehicle belongs to a customer account.
type Vehicle struct {
	ID                int64
	OwnerID           int64
	Make              string
	Model             string
	PlateNumber       string
	FuelType          FuelType
	YearOfManufacture int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// VehicleType is a staff-managed catalog entry (e.g. Sedan, SUV, Lorry).
type VehicleType struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
