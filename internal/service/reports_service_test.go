package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/autofuellanka/portal-service/internal/domain"
)

type fakeInventoryRepo struct {
	items []domain.InventoryItem
}

func (f *fakeInventoryRepo) CreateItem(_ context.Context, _ *domain.InventoryItem) error { return nil }
func (f *fakeInventoryRepo) UpdateItem(_ context.Context, _ *domain.InventoryItem) error { return nil }

func (f *fakeInventoryRepo) GetItemByID(_ context.Context, _ int64) (*domain.InventoryItem, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeInventoryRepo) GetItemBySKU(_ context.Context, _ string) (*domain.InventoryItem, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeInventoryRepo) ListItems(_ context.Context, activeOnly bool) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	for _, item := range f.items {
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeInventoryRepo) RecordMove(_ context.Context, _ *domain.StockMove) error { return nil }

func (f *fakeInventoryRepo) ListMoves(_ context.Context, _ int64) ([]domain.StockMove, error) {
	return nil, nil
}

type fakeVehicleRepo struct {
	types []domain.VehicleType
}

func (f *fakeVehicleRepo) Create(_ context.Context, _ *domain.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Update(_ context.Context, _ *domain.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Delete(_ context.Context, _ int64) error           { return nil }

func (f *fakeVehicleRepo) GetByID(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeVehicleRepo) List(_ context.Context) ([]domain.Vehicle, error) { return nil, nil }

func (f *fakeVehicleRepo) ListByOwner(_ context.Context, _ int64) ([]domain.Vehicle, error) {
	return nil, nil
}

func (f *fakeVehicleRepo) CreateType(_ context.Context, _ *domain.VehicleType) error { return nil }
func (f *fakeVehicleRepo) UpdateType(_ context.Context, _ *domain.VehicleType) error { return nil }

func (f *fakeVehicleRepo) ListTypes(_ context.Context) ([]domain.VehicleType, error) {
	return f.types, nil
}

func newReportsFixture() *ReportsService {
	inventory := &fakeInventoryRepo{items: []domain.InventoryItem{
		{ID: 1, SKU: "OIL-5W30", Name: "Engine Oil 5W30", OnHand: 40, MinQty: 10,
			UnitPrice: decimal.NewFromInt(4200), IsActive: true},
		{ID: 2, SKU: "FLT-AIR", Name: "Air Filter", OnHand: 2, MinQty: 5,
			UnitPrice: decimal.NewFromInt(1500), IsActive: true},
		{ID: 3, SKU: "OLD-PART", Name: "Retired Part", OnHand: 0, MinQty: 0, IsActive: false},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, FirstName: "Nimal", LastName: "Perera", Email: "nimal@autofuellanka.lk",
			Role: domain.RoleCustomer, Enabled: true},
		2: {ID: 2, FirstName: "Kamala", Email: "kamala@autofuellanka.lk",
			Role: domain.RoleCustomer, Enabled: false},
		3: {ID: 3, Email: "staff@autofuellanka.lk", Role: domain.RoleStaff, Enabled: true},
	}}
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 1, Type: domain.BookingTypeService, Status: domain.BookingStatusCompleted},
		2: {ID: 2, CustomerID: 2, Type: domain.BookingTypeFuel, Status: domain.BookingStatusPending},
	}}
	vehicles := &fakeVehicleRepo{types: []domain.VehicleType{
		{ID: 1, Name: "Sedan", IsActive: true},
	}}

	return NewReportsService(ReportsDependencies{
		InventoryRepo: inventory,
		UserRepo:      users,
		BookingRepo:   bookings,
		VehicleRepo:   vehicles,
	})
}

func TestDashboardSummaryCounts(t *testing.T) {
	svc := newReportsFixture()

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.TotalInventoryItems != 2 {
		t.Errorf("TotalInventoryItems = %d, want 2 (inactive items excluded)", summary.TotalInventoryItems)
	}
	if summary.LowStockItems != 1 {
		t.Errorf("LowStockItems = %d, want 1", summary.LowStockItems)
	}
	if summary.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2 (staff excluded)", summary.TotalCustomers)
	}
	if summary.TotalBookings != 2 {
		t.Errorf("TotalBookings = %d, want 2", summary.TotalBookings)
	}
	if summary.TotalVehicleTypes != 1 {
		t.Errorf("TotalVehicleTypes = %d, want 1", summary.TotalVehicleTypes)
	}
}

func TestInventoryCSVMarksLowStock(t *testing.T) {
	svc := newReportsFixture()

	data, err := svc.InventoryCSV(context.Background())
	if err != nil {
		t.Fatalf("InventoryCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 items", len(lines))
	}
	if lines[0] != "sku,name,category,on_hand,min_qty,unit_price,stock_status,description" {
		t.Errorf("unexpected header %q", lines[0])
	}

	var sawLow bool
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "FLT-AIR,") && strings.Contains(line, ",LOW,") {
			sawLow = true
		}
		if strings.HasPrefix(line, "OIL-5W30,") && !strings.Contains(line, ",OK,") {
			t.Errorf("healthy item not marked OK: %q", line)
		}
	}
	if !sawLow {
		t.Error("low-stock item not marked LOW")
	}
}

func TestCustomersCSVSkipsNonCustomers(t *testing.T) {
	svc := newReportsFixture()

	data, err := svc.CustomersCSV(context.Background())
	if err != nil {
		t.Fatalf("CustomersCSV: %v", err)
	}

	out := string(data)
	if strings.Contains(out, "staff@autofuellanka.lk") {
		t.Error("staff account leaked into the customer report")
	}
	if !strings.Contains(out, "Nimal Perera") || !strings.Contains(out, "disabled") {
		t.Errorf("expected customer rows with status, got:\n%s", out)
	}
}
