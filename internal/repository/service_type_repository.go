package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// ServiceTypeRepository encapsulates service catalog persistence.
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) error
	Update(ctx context.Context, st *domain.ServiceType) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
	List(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type serviceTypeRepository struct {
	pool *pgxpool.Pool
}

// NewServiceTypeRepository instantiates repository.
func NewServiceTypeRepository(pool *pgxpool.Pool) ServiceTypeRepository {
	return &serviceTypeRepository{pool: pool}
}

const serviceTypeColumns = `id, code, name, description, base_price, is_active, created_at, updated_at`

func (r *serviceTypeRepository) Create(ctx context.Context, st *domain.ServiceType) error {
	const query = `
        INSERT INTO service_types (code, name, description, base_price, is_active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		st.Code,
		st.Name,
		st.Description,
		st.BasePrice,
		st.IsActive,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
}

func (r *serviceTypeRepository) Update(ctx context.Context, st *domain.ServiceType) error {
	const query = `
        UPDATE service_types SET name=$1, description=$2, base_price=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		st.Name,
		st.Description,
		st.BasePrice,
		st.IsActive,
		st.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	var st domain.ServiceType
	if err := r.pool.QueryRow(ctx,
		`SELECT `+serviceTypeColumns+` FROM service_types WHERE id=$1`, id).Scan(
		&st.ID,
		&st.Code,
		&st.Name,
		&st.Description,
		&st.BasePrice,
		&st.IsActive,
		&st.CreatedAt,
		&st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *serviceTypeRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(
			&st.ID,
			&st.Code,
			&st.Name,
			&st.Description,
			&st.BasePrice,
			&st.IsActive,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *serviceTypeRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, type FROM locations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Type); err != nil {
			return nil, err
		}
		result = append(result, loc)
	}
	return result, rows.Err()
}
