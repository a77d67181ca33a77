package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// FeedbackService manages customer ratings of completed bookings.
type FeedbackService struct {
	feedback   repository.FeedbackRepository
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
}

// FeedbackDependencies bundles repositories for feedback service.
type FeedbackDependencies struct {
	FeedbackRepo repository.FeedbackRepository
	BookingRepo  repository.BookingRepository
	Dispatcher   events.Dispatcher
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	return &FeedbackService{
		feedback:   deps.FeedbackRepo,
		bookings:   deps.BookingRepo,
		dispatcher: deps.Dispatcher,
	}
}

func validateFeedback(rating int, comment string) error {
	if rating < domain.FeedbackMinRating || rating > domain.FeedbackMaxRating {
		return util.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}
	if len(comment) > domain.FeedbackMaxCommentLen {
		return util.NewValidationError("comment too long", map[string]any{"max": domain.FeedbackMaxCommentLen})
	}
	return nil
}

// Submit records feedback for a completed booking. One entry per booking;
// customers may only rate their own bookings.
func (s *FeedbackService) Submit(ctx context.Context, actor events.Actor, bookingID int64, rating int, comment string) (*domain.Feedback, error) {
	if err := validateFeedback(rating, comment); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer && booking.CustomerID != actor.UserID {
		return nil, util.NewNotFound("booking", map[string]any{"id": bookingID})
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, util.NewConflict("feedback requires a completed booking",
			map[string]any{"status": string(booking.Status)})
	}

	exists, err := s.feedback.ExistsByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.NewConflict("booking already has feedback", map[string]any{"booking_id": bookingID})
	}

	fb := &domain.Feedback{
		CustomerID: booking.CustomerID,
		BookingID:  bookingID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventFeedbackSubmitted,
			Actor:     actor,
			Timestamp: time.Now(),
			Payload: events.FeedbackSubmittedPayload{
				FeedbackID: fb.ID,
				BookingID:  bookingID,
				Rating:     rating,
			},
		})
	}
	return fb, nil
}

// Update edits an entry's rating and comment. Customers may only touch their
// own feedback.
func (s *FeedbackService) Update(ctx context.Context, actor events.Actor, id int64, rating int, comment string) (*domain.Feedback, error) {
	if err := validateFeedback(rating, comment); err != nil {
		return nil, err
	}
	fb, err := s.getScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	fb.Rating = rating
	fb.Comment = comment
	if err := s.feedback.Update(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// Delete removes an entry, scoped like Update.
func (s *FeedbackService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	if _, err := s.getScoped(ctx, actor, id); err != nil {
		return err
	}
	return s.feedback.Delete(ctx, id)
}

// Get loads one entry with customer scoping.
func (s *FeedbackService) Get(ctx context.Context, actor events.Actor, id int64) (*domain.Feedback, error) {
	return s.getScoped(ctx, actor, id)
}

// GetByBooking returns the booking's feedback, or nil when none exists yet.
func (s *FeedbackService) GetByBooking(ctx context.Context, bookingID int64) (*domain.Feedback, error) {
	fb, err := s.feedback.GetByBooking(ctx, bookingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return fb, err
}

// ListForActor returns the caller's feedback, or everything for staff views.
func (s *FeedbackService) ListForActor(ctx context.Context, actor events.Actor) ([]domain.Feedback, error) {
	if actor.Role == domain.RoleCustomer {
		return s.feedback.ListByCustomer(ctx, actor.UserID)
	}
	return s.feedback.List(ctx)
}

// Recent returns the latest entries for the landing page.
func (s *FeedbackService) Recent(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.ListRecent(ctx, 10)
}

// Stats returns the count and average rating across all feedback.
func (s *FeedbackService) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	return s.feedback.Stats(ctx)
}

func (s *FeedbackService) getScoped(ctx context.Context, actor events.Actor, id int64) (*domain.Feedback, error) {
	fb, err := s.feedback.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer && fb.CustomerID != actor.UserID {
		return nil, util.NewNotFound("feedback", map[string]any{"id": id})
	}
	return fb, nil
}
