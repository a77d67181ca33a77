package service

import (
	"testing"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func confirmedBooking(id int64) domain.Booking {
	return domain.Booking{ID: id, Status: domain.BookingStatusConfirmed}
}

func TestPendingBookingsCountsUncovered(t *testing.T) {
	bookings := []domain.Booking{
		confirmedBooking(1),
		confirmedBooking(2),
		confirmedBooking(3),
		confirmedBooking(4),
		confirmedBooking(5),
	}
	jobs := []domain.Job{
		{ID: 10, BookingID: 1},
		{ID: 11, BookingID: 3},
		{ID: 12, BookingID: 5},
	}

	if got := PendingBookings(bookings, jobs); got != 2 {
		t.Fatalf("PendingBookings = %d, want 2", got)
	}
}

func TestPendingBookingsCountsEveryStatus(t *testing.T) {
	// The badge counts bookings with no job, full stop. A PENDING booking
	// without a job still shows up.
	bookings := []domain.Booking{
		{ID: 1, Status: domain.BookingStatusPending},
		confirmedBooking(2),
		confirmedBooking(3),
		confirmedBooking(4),
		confirmedBooking(5),
	}
	jobs := []domain.Job{
		{ID: 10, BookingID: 2},
		{ID: 11, BookingID: 3},
		{ID: 12, BookingID: 4},
	}

	if got := PendingBookings(bookings, jobs); got != 2 {
		t.Fatalf("PendingBookings = %d, want 2", got)
	}
}

func TestPendingBookingsEmpty(t *testing.T) {
	if got := PendingBookings(nil, nil); got != 0 {
		t.Fatalf("PendingBookings = %d, want 0", got)
	}
}

func TestPendingBookingsAllCovered(t *testing.T) {
	bookings := []domain.Booking{confirmedBooking(1), confirmedBooking(2)}
	jobs := []domain.Job{
		{ID: 1, BookingID: 1},
		{ID: 2, BookingID: 2},
	}
	if got := PendingBookings(bookings, jobs); got != 0 {
		t.Fatalf("PendingBookings = %d, want 0", got)
	}
}
