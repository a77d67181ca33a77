package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// FeedbackRequest payload for submitting or editing feedback.
type FeedbackRequest struct {
	BookingID int64  `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// FeedbackResponse is the API view of a feedback entry.
type FeedbackResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	BookingID    int64     `json:"booking_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeedbackStatsResponse summarizes all feedback.
type FeedbackStatsResponse struct {
	Total         int64   `json:"total"`
	AverageRating float64 `json:"average_rating"`
}

// NewFeedbackResponse maps a feedback entry.
func NewFeedbackResponse(fb *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           fb.ID,
		CustomerID:   fb.CustomerID,
		CustomerName: fb.CustomerName,
		BookingID:    fb.BookingID,
		Rating:       fb.Rating,
		Comment:      fb.Comment,
		CreatedAt:    fb.CreatedAt,
	}
}
