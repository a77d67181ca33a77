package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// JobService coordinates technician work assignments.
type JobService struct {
	jobs       repository.JobRepository
	bookings   repository.BookingRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// JobDependencies bundles repositories for job service.
type JobDependencies struct {
	JobRepo     repository.JobRepository
	BookingRepo repository.BookingRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:       deps.JobRepo,
		bookings:   deps.BookingRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Assign creates a job for a confirmed booking. A booking carries at most one
// job and a technician holds at most one active job.
func (s *JobService) Assign(ctx context.Context, actor events.Actor, bookingID, technicianID int64, notes string) (*domain.Job, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, util.NewConflict("booking must be confirmed before assignment",
			map[string]any{"status": string(booking.Status)})
	}

	technician, err := s.users.GetByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if technician.Role != domain.RoleTechnician {
		return nil, util.NewValidationError("assignee is not a technician", map[string]any{"user_id": technicianID})
	}
	if !technician.Enabled {
		return nil, util.NewValidationError("technician account is disabled", map[string]any{"user_id": technicianID})
	}

	taken, err := s.jobs.ExistsByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.NewConflict("booking already has a job", map[string]any{"booking_id": bookingID})
	}

	busy, err := s.jobs.HasActiveJob(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, util.NewConflict("technician already has an active job", map[string]any{"technician_id": technicianID})
	}

	job := &domain.Job{
		BookingID:    bookingID,
		TechnicianID: technicianID,
		Status:       domain.JobStatusQueued,
		Notes:        notes,
		AssignedAt:   time.Now(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventJobAssigned, actor, events.JobAssignedPayload{
		JobID:        job.ID,
		BookingID:    bookingID,
		TechnicianID: technicianID,
	})
	return job, nil
}

var jobTransitions = map[domain.JobStatus][]domain.JobStatus{
	domain.JobStatusQueued:     {domain.JobStatusInProgress, domain.JobStatusCancelled},
	domain.JobStatusInProgress: {domain.JobStatusBlocked, domain.JobStatusDone, domain.JobStatusCancelled},
	domain.JobStatusBlocked:    {domain.JobStatusInProgress, domain.JobStatusCancelled},
}

// ChangeStatus advances a job. Technicians may only move their own jobs.
func (s *JobService) ChangeStatus(ctx context.Context, actor events.Actor, jobID int64, next domain.JobStatus, notes string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleTechnician && job.TechnicianID != actor.UserID {
		return nil, util.NewNotFound("job", map[string]any{"id": jobID})
	}

	allowed := false
	for _, to := range jobTransitions[job.Status] {
		if to == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, util.NewConflict("invalid status transition", map[string]any{
			"from": string(job.Status),
			"to":   string(next),
		})
	}

	old := job.Status
	job.Status = next
	if notes != "" {
		job.Notes = notes
	}
	if next == domain.JobStatusDone {
		now := time.Now()
		job.CompletedAt = &now
	}
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	if next == domain.JobStatusDone {
		if booking, err := s.bookings.GetByID(ctx, job.BookingID); err == nil &&
			booking.Status == domain.BookingStatusConfirmed {
			booking.Status = domain.BookingStatusCompleted
			if booking.EndTime == nil {
				now := time.Now()
				booking.EndTime = &now
			}
			_ = s.bookings.Update(ctx, booking)
		}
	}

	s.publish(ctx, events.EventJobStatusChanged, actor, events.JobStatusChangedPayload{
		JobID:     job.ID,
		OldStatus: old,
		NewStatus: next,
	})
	return job, nil
}

// ListForTechnician returns a technician's own queue.
func (s *JobService) ListForTechnician(ctx context.Context, technicianID int64) ([]domain.Job, error) {
	return s.jobs.ListByTechnician(ctx, technicianID)
}

// List returns all jobs for operations views.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

// PendingBookings counts bookings not referenced by any job, regardless of
// booking status. This is the number behind the technician menu badge.
func PendingBookings(bookings []domain.Booking, jobs []domain.Job) int {
	covered := make(map[int64]struct{}, len(jobs))
	for _, job := range jobs {
		covered[job.BookingID] = struct{}{}
	}

	count := 0
	for _, booking := range bookings {
		if _, ok := covered[booking.ID]; ok {
			continue
		}
		count++
	}
	return count
}

// CountPending computes the live badge value from storage.
func (s *JobService) CountPending(ctx context.Context) (int, error) {
	bookings, err := s.bookings.List(ctx, repository.BookingFilter{Limit: 1000})
	if err != nil {
		return 0, err
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return 0, err
	}
	return PendingBookings(bookings, jobs), nil
}

func (s *JobService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
