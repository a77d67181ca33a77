package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// BookingFilter captures staff search parameters.
type BookingFilter struct {
	CustomerID *int64
	Statuses   []domain.BookingStatus
	Type       *domain.BookingType
	Limit      int
	Offset     int
}

// BookingRepository encapsulates booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, customer_id, vehicle_id, service_type_id, location_id, type, status,
    start_time, end_time, fuel_type, liters_requested, description, urgency, contact_preference,
    created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (customer_id, vehicle_id, service_type_id, location_id, type, status,
            start_time, end_time, fuel_type, liters_requested, description, urgency, contact_preference)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.CustomerID,
		booking.VehicleID,
		booking.ServiceTypeID,
		booking.LocationID,
		booking.Type,
		booking.Status,
		booking.StartTime,
		booking.EndTime,
		booking.FuelType,
		booking.LitersRequested,
		booking.Description,
		booking.Urgency,
		booking.ContactPreference,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings SET vehicle_id=$1, service_type_id=$2, location_id=$3, status=$4,
            start_time=$5, end_time=$6, fuel_type=$7, liters_requested=$8, description=$9,
            urgency=$10, contact_preference=$11, updated_at=NOW()
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		booking.VehicleID,
		booking.ServiceTypeID,
		booking.LocationID,
		booking.Status,
		booking.StartTime,
		booking.EndTime,
		booking.FuelType,
		booking.LitersRequested,
		booking.Description,
		booking.Urgency,
		booking.ContactPreference,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.VehicleID,
		&booking.ServiceTypeID,
		&booking.LocationID,
		&booking.Type,
		&booking.Status,
		&booking.StartTime,
		&booking.EndTime,
		&booking.FuelType,
		&booking.LitersRequested,
		&booking.Description,
		&booking.Urgency,
		&booking.ContactPreference,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		clauses = append(clauses, fmt.Sprintf("customer_id=$%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("type=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY start_time DESC LIMIT %d OFFSET %d`,
		bookingColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.VehicleID,
			&booking.ServiceTypeID,
			&booking.LocationID,
			&booking.Type,
			&booking.Status,
			&booking.StartTime,
			&booking.EndTime,
			&booking.FuelType,
			&booking.LitersRequested,
			&booking.Description,
			&booking.Urgency,
			&booking.ContactPreference,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
