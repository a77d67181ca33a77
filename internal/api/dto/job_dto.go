package dto

import (
	"time"

	"github.com/autofuellanka/portal-service/internal/domain"
)

// AssignJobRequest payload.
type AssignJobRequest struct {
	BookingID    int64  `json:"booking_id"`
	TechnicianID int64  `json:"technician_id"`
	Notes        string `json:"notes"`
}

// ChangeJobStatusRequest payload.
type ChangeJobStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// JobResponse is the API view of a job.
type JobResponse struct {
	ID           int64      `json:"id"`
	BookingID    int64      `json:"booking_id"`
	TechnicianID int64      `json:"technician_id"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	AssignedAt   time.Time  `json:"assigned_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		BookingID:    j.BookingID,
		TechnicianID: j.TechnicianID,
		Status:       string(j.Status),
		Notes:        j.Notes,
		AssignedAt:   j.AssignedAt,
		CompletedAt:  j.CompletedAt,
	}
}
