package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// VehicleRepository encapsulates vehicle and vehicle-type persistence.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error)
	CreateType(ctx context.Context, vt *domain.VehicleType) error
	UpdateType(ctx context.Context, vt *domain.VehicleType) error
	ListTypes(ctx context.Context) ([]domain.VehicleType, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository instantiates repository.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

const vehicleColumns = `id, owner_id, make, model, plate_number, fuel_type, year_of_manufacture, created_at, updated_at`

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        INSERT INTO vehicles (owner_id, make, model, plate_number, fuel_type, year_of_manufacture)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		vehicle.OwnerID,
		vehicle.Make,
		vehicle.Model,
		vehicle.PlateNumber,
		vehicle.FuelType,
		vehicle.YearOfManufacture,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        UPDATE vehicles SET make=$1, model=$2, plate_number=$3, fuel_type=$4,
            year_of_manufacture=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		vehicle.Make,
		vehicle.Model,
		vehicle.PlateNumber,
		vehicle.FuelType,
		vehicle.YearOfManufacture,
		vehicle.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := r.pool.QueryRow(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id=$1`, id).Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.PlateNumber,
		&vehicle.FuelType,
		&vehicle.YearOfManufacture,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE owner_id=$1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (r *vehicleRepository) CreateType(ctx context.Context, vt *domain.VehicleType) error {
	const query = `
        INSERT INTO vehicle_types (name, description, is_active)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, vt.Name, vt.Description, vt.IsActive).
		Scan(&vt.ID, &vt.CreatedAt, &vt.UpdatedAt)
}

func (r *vehicleRepository) UpdateType(ctx context.Context, vt *domain.VehicleType) error {
	const query = `
        UPDATE vehicle_types SET name=$1, description=$2, is_active=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, vt.Name, vt.Description, vt.IsActive, vt.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) ListTypes(ctx context.Context) ([]domain.VehicleType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, is_active, created_at, updated_at FROM vehicle_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.VehicleType
	for rows.Next() {
		var vt domain.VehicleType
		if err := rows.Scan(&vt.ID, &vt.Name, &vt.Description, &vt.IsActive, &vt.CreatedAt, &vt.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, vt)
	}
	return result, rows.Err()
}

func scanVehicles(rows pgx.Rows) ([]domain.Vehicle, error) {
	var result []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.OwnerID,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.PlateNumber,
			&vehicle.FuelType,
			&vehicle.YearOfManufacture,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, vehicle)
	}
	return result, rows.Err()
}
