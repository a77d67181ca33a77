package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// VehicleRequest payload for create and update.
type VehicleRequest struct {
	Make              string `json:"make"`
	Model             string `json:"model"`
	PlateNumber       string `json:"plate_number"`
	FuelType          string `json:"fuel_type"`
	YearOfManufacture int    `json:"year_of_manufacture"`
}

// VehicleResponse is the API view of a vehicle.
type VehicleResponse struct {
	ID                int64     `json:"id"`
	OwnerID           int64     `json:"owner_id"`
	Make              string    `json:"make"`
	Model             string    `json:"model"`
	PlateNumber       string    `json:"plate_number"`
	FuelType          string    `json:"fuel_type"`
	YearOfManufacture int       `json:"year_of_manufacture"`
	CreatedAt         time.Time `json:"created_at"`
}

// VehicleTypeRequest payload for the vehicle-type catalog.
type VehicleTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// VehicleTypeResponse is the API view of a vehicle-type entry.
type VehicleTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// NewVehicleTypeResponse maps a vehicle type.
func NewVehicleTypeResponse(vt *domain.VehicleType) VehicleTypeResponse {
	return VehicleTypeResponse{
		ID:          vt.ID,
		Name:        vt.Name,
		Description: vt.Description,
		IsActive:    vt.IsActive,
	}
}

// NewVehicleResponse maps a domain vehicle.
func NewVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID,
		OwnerID:           v.OwnerID,
		Make:              v.Make,
		Model:             v.Model,
		PlateNumber:       v.PlateNumber,
		FuelType:          string(v.FuelType),
		YearOfManufacture: v.YearOfManufacture,
		CreatedAt:         v.CreatedAt,
	}
}
