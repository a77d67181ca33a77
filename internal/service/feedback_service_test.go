package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
)

type fakeFeedbackRepo struct {
	entries map[int64]*domain.Feedback
	nextID  int64
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{entries: map[int64]*domain.Feedback{}, nextID: 1}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) error {
	fb.ID = f.nextID
	f.nextID++
	copied := *fb
	f.entries[fb.ID] = &copied
	return nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, fb *domain.Feedback) error {
	if _, ok := f.entries[fb.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *fb
	f.entries[fb.ID] = &copied
	return nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.entries[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeFeedbackRepo) GetByID(_ context.Context, id int64) (*domain.Feedback, error) {
	fb, ok := f.entries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *fb
	return &copied, nil
}

func (f *fakeFeedbackRepo) GetByBooking(_ context.Context, bookingID int64) (*domain.Feedback, error) {
	for _, fb := range f.entries {
		if fb.BookingID == bookingID {
			copied := *fb
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeFeedbackRepo) ExistsByBooking(_ context.Context, bookingID int64) (bool, error) {
	for _, fb := range f.entries {
		if fb.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFeedbackRepo) List(_ context.Context) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, fb := range f.entries {
		out = append(out, *fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, fb := range f.entries {
		if fb.CustomerID == customerID {
			out = append(out, *fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListRecent(_ context.Context, limit int) ([]domain.Feedback, error) {
	all, _ := f.List(context.Background())
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeFeedbackRepo) Stats(_ context.Context) (domain.FeedbackStats, error) {
	stats := domain.FeedbackStats{}
	sum := 0
	for _, fb := range f.entries {
		stats.Total++
		sum += fb.Rating
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}

func newFeedbackFixture() (*FeedbackService, *fakeFeedbackRepo) {
	repo := newFakeFeedbackRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 100, Status: domain.BookingStatusCompleted},
		2: {ID: 2, CustomerID: 100, Status: domain.BookingStatusConfirmed},
		3: {ID: 3, CustomerID: 200, Status: domain.BookingStatusCompleted},
	}}
	svc := NewFeedbackService(FeedbackDependencies{
		FeedbackRepo: repo,
		BookingRepo:  bookings,
	})
	return svc, repo
}

var feedbackCustomer = events.Actor{UserID: 100, Role: domain.RoleCustomer}

func TestSubmitFeedbackForCompletedBooking(t *testing.T) {
	svc, _ := newFeedbackFixture()

	fb, err := svc.Submit(context.Background(), feedbackCustomer, 1, 5, "quick and clean")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if fb.CustomerID != 100 || fb.BookingID != 1 || fb.Rating != 5 {
		t.Errorf("unexpected feedback %+v", fb)
	}
}

func TestSubmitFeedbackRejectsUnfinishedBooking(t *testing.T) {
	svc, _ := newFeedbackFixture()

	if _, err := svc.Submit(context.Background(), feedbackCustomer, 2, 4, ""); err == nil {
		t.Fatal("expected error for a booking that is not completed")
	}
}

func TestSubmitFeedbackRejectsDuplicate(t *testing.T) {
	svc, _ := newFeedbackFixture()

	if _, err := svc.Submit(context.Background(), feedbackCustomer, 1, 5, ""); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), feedbackCustomer, 1, 3, ""); err == nil {
		t.Fatal("expected error submitting feedback twice for one booking")
	}
}

func TestSubmitFeedbackRejectsBadRating(t *testing.T) {
	svc, _ := newFeedbackFixture()

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Submit(context.Background(), feedbackCustomer, 1, rating, ""); err == nil {
			t.Errorf("rating %d accepted, want error", rating)
		}
	}
}

func TestCustomerCannotRateOthersBooking(t *testing.T) {
	svc, _ := newFeedbackFixture()

	if _, err := svc.Submit(context.Background(), feedbackCustomer, 3, 5, ""); err == nil {
		t.Fatal("expected error rating another customer's booking")
	}
}

func TestCustomerCannotEditOthersFeedback(t *testing.T) {
	svc, _ := newFeedbackFixture()

	other := events.Actor{UserID: 200, Role: domain.RoleCustomer}
	fb, err := svc.Submit(context.Background(), other, 3, 4, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.Update(context.Background(), feedbackCustomer, fb.ID, 1, "spite"); err == nil {
		t.Fatal("expected error editing another customer's feedback")
	}
}

func TestFeedbackStatsAverage(t *testing.T) {
	svc, _ := newFeedbackFixture()

	if _, err := svc.Submit(context.Background(), feedbackCustomer, 1, 5, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	other := events.Actor{UserID: 200, Role: domain.RoleCustomer}
	if _, err := svc.Submit(context.Background(), other, 3, 4, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 2 || stats.AverageRating != 4.5 {
		t.Fatalf("stats = %+v, want total 2 average 4.5", stats)
	}
}
