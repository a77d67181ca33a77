package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/repository"
)

// ReportsService composes the CSV exports and the summary behind the
// operations dashboard. It reads through the existing repositories; nothing
// here writes.
type ReportsService struct {
	inventory repository.InventoryRepository
	users     repository.UserRepository
	bookings  repository.BookingRepository
	vehicles  repository.VehicleRepository
}

// ReportsDependencies bundles repositories for reports service.
type ReportsDependencies struct {
	InventoryRepo repository.InventoryRepository
	UserRepo      repository.UserRepository
	BookingRepo   repository.BookingRepository
	VehicleRepo   repository.VehicleRepository
}

// NewReportsService constructs the service.
func NewReportsService(deps ReportsDependencies) *ReportsService {
	return &ReportsService{
		inventory: deps.InventoryRepo,
		users:     deps.UserRepo,
		bookings:  deps.BookingRepo,
		vehicles:  deps.VehicleRepo,
	}
}

// DashboardSummary is the operations dashboard headline block.
type DashboardSummary struct {
	TotalInventoryItems int `json:"total_inventory_items"`
	LowStockItems       int `json:"low_stock_items"`
	TotalCustomers      int `json:"total_customers"`
	TotalBookings       int `json:"total_bookings"`
	TotalVehicleTypes   int `json:"total_vehicle_types"`
}

// Summary computes dashboard counts.
func (s *ReportsService) Summary(ctx context.Context) (DashboardSummary, error) {
	var summary DashboardSummary

	items, err := s.inventory.ListItems(ctx, true)
	if err != nil {
		return summary, err
	}
	summary.TotalInventoryItems = len(items)
	for i := range items {
		if items[i].LowStock() {
			summary.LowStockItems++
		}
	}

	customers, err := s.users.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return summary, err
	}
	summary.TotalCustomers = len(customers)

	bookings, err := s.bookings.List(ctx, repository.BookingFilter{})
	if err != nil {
		return summary, err
	}
	summary.TotalBookings = len(bookings)

	types, err := s.vehicles.ListTypes(ctx)
	if err != nil {
		return summary, err
	}
	summary.TotalVehicleTypes = len(types)

	return summary, nil
}

// InventoryCSV renders the active inventory as a CSV document.
func (s *ReportsService) InventoryCSV(ctx context.Context) ([]byte, error) {
	items, err := s.inventory.ListItems(ctx, true)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"sku", "name", "category", "on_hand", "min_qty", "unit_price", "stock_status", "description"},
	}
	for i := range items {
		item := &items[i]
		status := "OK"
		if item.LowStock() {
			status = "LOW"
		}
		records = append(records, []string{
			item.SKU,
			item.Name,
			item.Category,
			strconv.Itoa(item.OnHand),
			strconv.Itoa(item.MinQty),
			item.UnitPrice.StringFixed(2),
			status,
			item.Description,
		})
	}
	return renderCSV(records)
}

// CustomersCSV renders the customer roster as a CSV document.
func (s *ReportsService) CustomersCSV(ctx context.Context) ([]byte, error) {
	customers, err := s.users.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"id", "name", "email", "phone", "city", "registered", "status"},
	}
	for i := range customers {
		c := &customers[i]
		status := "active"
		if !c.Enabled {
			status = "disabled"
		}
		records = append(records, []string{
			strconv.FormatInt(c.ID, 10),
			c.FullName(),
			c.Email,
			c.Phone,
			c.City,
			c.CreatedAt.Format(time.RFC3339),
			status,
		})
	}
	return renderCSV(records)
}

// BookingsCSV renders every booking as a CSV document.
func (s *ReportsService) BookingsCSV(ctx context.Context) ([]byte, error) {
	bookings, err := s.bookings.List(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, err
	}

	records := [][]string{
		{"id", "customer_id", "type", "status", "start_time", "fuel_type", "liters"},
	}
	for i := range bookings {
		b := &bookings[i]
		fuel := ""
		if b.FuelType != nil {
			fuel = string(*b.FuelType)
		}
		liters := ""
		if b.LitersRequested != nil {
			liters = strconv.FormatFloat(*b.LitersRequested, 'f', 2, 64)
		}
		records = append(records, []string{
			strconv.FormatInt(b.ID, 10),
			strconv.FormatInt(b.CustomerID, 10),
			string(b.Type),
			string(b.Status),
			b.StartTime.Format(time.RFC3339),
			fuel,
			liters,
		})
	}
	return renderCSV(records)
}

func renderCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
