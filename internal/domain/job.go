package domain

import "time"

// JobStatus enumerates technician work states.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusBlocked    JobStatus = "BLOCKED"
	JobStatusDone       JobStatus = "DONE"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// ActiveJobStatuses are the states that count as an open assignment. A
// technician may hold at most one job in these states.
func ActiveJobStatuses() []JobStatus {
	return []JobStatus{JobStatusQueued, JobStatusInProgress, JobStatusBlocked}
}

// Job links a booking to the technician working it. At most one job exists
// per booking.
type Job struct {
	ID           int64
	BookingID    int64
	TechnicianID int64
	Status       JobStatus
	Notes        string
	AssignedAt   time.Time
	CompletedAt  *time.Time
}
