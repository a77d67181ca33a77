package domain

// FuelType enumerates dispensable fuels.
type FuelType string

const (
	FuelPetrol92    FuelType = "PETROL_92"
	FuelPetrol95    FuelType = "PETROL_95"
	FuelDieselAuto  FuelType = "DIESEL_AUTO"
	FuelDieselSuper FuelType = "DIESEL_SUPER"
)

// ParseFuelType validates a fuel type string.
func ParseFuelType(s string) (FuelType, bool) {
	switch FuelType(s) {
	case FuelPetrol92, FuelPetrol95, FuelDieselAuto, FuelDieselSuper:
		return FuelType(s), true
	}
	return "", false
}
