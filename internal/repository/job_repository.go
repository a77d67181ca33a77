package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Job, error)
	ExistsByBooking(ctx context.Context, bookingID int64) (bool, error)
	HasActiveJob(ctx context.Context, technicianID int64) (bool, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, booking_id, technician_id, status, notes, assigned_at, completed_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (booking_id, technician_id, status, notes, assigned_at)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		job.BookingID,
		job.TechnicianID,
		job.Status,
		job.Notes,
		job.AssignedAt,
	).Scan(&job.ID)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET status=$1, notes=$2, completed_at=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, job.Status, job.Notes, job.CompletedAt, job.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	if err := r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id=$1`, id).Scan(
		&job.ID,
		&job.BookingID,
		&job.TechnicianID,
		&job.Status,
		&job.Notes,
		&job.AssignedAt,
		&job.CompletedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY assigned_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE technician_id=$1 ORDER BY assigned_at DESC`, technicianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ExistsByBooking(ctx context.Context, bookingID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE booking_id=$1)`, bookingID).Scan(&exists)
	return exists, err
}

func (r *jobRepository) HasActiveJob(ctx context.Context, technicianID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE technician_id=$1 AND status = ANY($2))`,
		technicianID, domain.ActiveJobStatuses()).Scan(&exists)
	return exists, err
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.BookingID,
			&job.TechnicianID,
			&job.Status,
			&job.Notes,
			&job.AssignedAt,
			&job.CompletedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
