package domain

import "time"

// Feedback is a customer's rating of a completed booking. One entry per
// booking.
type Feedback struct {
	ID         int64
	CustomerID int64
	BookingID  int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CustomerName is display-only, filled by joined reads.
	CustomerName string
}

// FeedbackStats summarizes the whole feedback table.
type FeedbackStats struct {
	Total         int64
	AverageRating float64
}

const (
	// FeedbackMinRating and FeedbackMaxRating bound the star scale.
	FeedbackMinRating = 1
	FeedbackMaxRating = 5
	// FeedbackMaxCommentLen caps the free-text comment.
	FeedbackMaxCommentLen = 1000
)
