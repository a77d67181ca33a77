package service

import (
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// Posted pump prices per liter in LKR.
var fuelPrices = map[domain.FuelType]decimal.Decimal{
	domain.FuelPetrol92:    decimal.NewFromInt(299),
	domain.FuelPetrol95:    decimal.NewFromInt(361),
	domain.FuelDieselAuto:  decimal.NewFromInt(277),
	domain.FuelDieselSuper: decimal.NewFromInt(313),
}

// FuelPrice returns the per-liter price for a fuel type.
func FuelPrice(ft domain.FuelType) (decimal.Decimal, error) {
	price, ok := fuelPrices[ft]
	if !ok {
		return decimal.Zero, util.NewValidationError("unknown fuel type", map[string]any{"fuel_type": string(ft)})
	}
	return price, nil
}

// FuelCost prices a quantity of fuel, rounded to cents.
func FuelCost(ft domain.FuelType, liters float64) (decimal.Decimal, error) {
	price, err := FuelPrice(ft)
	if err != nil {
		return decimal.Zero, err
	}
	if liters <= 0 {
		return decimal.Zero, util.NewValidationError("liters must be positive", nil)
	}
	return price.Mul(decimal.NewFromFloat(liters)).Round(2), nil
}
