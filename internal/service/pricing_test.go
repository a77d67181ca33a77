package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func TestFuelPriceTable(t *testing.T) {
	cases := map[domain.FuelType]int64{
		domain.FuelPetrol92:    299,
		domain.FuelPetrol95:    361,
		domain.FuelDieselAuto:  277,
		domain.FuelDieselSuper: 313,
	}
	for ft, want := range cases {
		price, err := FuelPrice(ft)
		if err != nil {
			t.Fatalf("FuelPrice(%s): %v", ft, err)
		}
		if !price.Equal(decimal.NewFromInt(want)) {
			t.Errorf("FuelPrice(%s) = %s, want %d", ft, price, want)
		}
	}
}

func TestFuelPriceUnknown(t *testing.T) {
	if _, err := FuelPrice(domain.FuelType("KEROSENE")); err == nil {
		t.Fatal("expected error for unknown fuel type")
	}
}

func TestFuelCost(t *testing.T) {
	cost, err := FuelCost(domain.FuelPetrol92, 12.5)
	if err != nil {
		t.Fatalf("FuelCost: %v", err)
	}
	want := decimal.NewFromFloat(3737.50)
	if !cost.Equal(want) {
		t.Errorf("FuelCost = %s, want %s", cost, want)
	}
}

func TestFuelCostRejectsNonPositiveLiters(t *testing.T) {
	for _, liters := range []float64{0, -5} {
		if _, err := FuelCost(domain.FuelPetrol95, liters); err == nil {
			t.Errorf("expected error for liters=%v", liters)
		}
	}
}
