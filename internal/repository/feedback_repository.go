package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// FeedbackRepository encapsulates customer feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	Update(ctx context.Context, fb *domain.Feedback) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Feedback, error)
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Feedback, error)
	ExistsByBooking(ctx context.Context, bookingID int64) (bool, error)
	List(ctx context.Context) ([]domain.Feedback, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Feedback, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Feedback, error)
	Stats(ctx context.Context) (domain.FeedbackStats, error)
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository instantiates repository.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

// Reads join users so listings can show who wrote the feedback.
const feedbackSelect = `
    SELECT f.id, f.customer_id, f.booking_id, f.rating, f.comment,
           f.created_at, f.updated_at,
           TRIM(u.first_name || ' ' || u.last_name)
    FROM feedback f
    JOIN users u ON u.id = f.customer_id`

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (customer_id, booking_id, rating, comment)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		fb.CustomerID,
		fb.BookingID,
		fb.Rating,
		fb.Comment,
	).Scan(&fb.ID, &fb.CreatedAt, &fb.UpdatedAt)
}

func (r *feedbackRepository) Update(ctx context.Context, fb *domain.Feedback) error {
	const query = `
        UPDATE feedback SET rating=$1, comment=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, fb.Rating, fb.Comment, fb.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	return r.fetchOne(ctx, feedbackSelect+` WHERE f.id=$1`, id)
}

func (r *feedbackRepository) GetByBooking(ctx context.Context, bookingID int64) (*domain.Feedback, error) {
	return r.fetchOne(ctx, feedbackSelect+` WHERE f.booking_id=$1`, bookingID)
}

func (r *feedbackRepository) fetchOne(ctx context.Context, query string, arg any) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&fb.ID,
		&fb.CustomerID,
		&fb.BookingID,
		&fb.Rating,
		&fb.Comment,
		&fb.CreatedAt,
		&fb.UpdatedAt,
		&fb.CustomerName,
	); err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *feedbackRepository) ExistsByBooking(ctx context.Context, bookingID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM feedback WHERE booking_id=$1)`, bookingID).Scan(&exists)
	return exists, err
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	return r.fetchMany(ctx, feedbackSelect+` ORDER BY f.created_at DESC`)
}

func (r *feedbackRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Feedback, error) {
	return r.fetchMany(ctx,
		feedbackSelect+` WHERE f.customer_id=$1 ORDER BY f.created_at DESC`, customerID)
}

func (r *feedbackRepository) ListRecent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	return r.fetchMany(ctx,
		feedbackSelect+` ORDER BY f.created_at DESC LIMIT $1`, limit)
}

func (r *feedbackRepository) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(
			&fb.ID,
			&fb.CustomerID,
			&fb.BookingID,
			&fb.Rating,
			&fb.Comment,
			&fb.CreatedAt,
			&fb.UpdatedAt,
			&fb.CustomerName,
		); err != nil {
			return nil, err
		}
		result = append(result, fb)
	}
	return result, rows.Err()
}

func (r *feedbackRepository) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	var stats domain.FeedbackStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM feedback`).
		Scan(&stats.Total, &stats.AverageRating)
	return stats, err
}
