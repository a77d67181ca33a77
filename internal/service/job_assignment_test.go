package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/events"
)

type fakeJobRepo struct {
	jobs   map[int64]*domain.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]*domain.Job{}, nextID: 1}
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	job.ID = f.nextID
	f.nextID++
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]domain.Job, error) {
	var out []domain.Job
	for _, job := range f.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (f *fakeJobRepo) ListByTechnician(_ context.Context, technicianID int64) ([]domain.Job, error) {
	var out []domain.Job
	for _, job := range f.jobs {
		if job.TechnicianID == technicianID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ExistsByBooking(_ context.Context, bookingID int64) (bool, error) {
	for _, job := range f.jobs {
		if job.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeJobRepo) HasActiveJob(_ context.Context, technicianID int64) (bool, error) {
	active := map[domain.JobStatus]bool{}
	for _, s := range domain.ActiveJobStatuses() {
		active[s] = true
	}
	for _, job := range f.jobs {
		if job.TechnicianID == technicianID && active[job.Status] {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (f *fakeUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ int64) error        { return nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) { return nil, nil }

func (f *fakeUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func newJobFixture() (*JobService, *fakeJobRepo, *fakeBookingRepo) {
	jobs := newFakeJobRepo()
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, CustomerID: 100, Status: domain.BookingStatusConfirmed},
		2: {ID: 2, CustomerID: 100, Status: domain.BookingStatusConfirmed},
		3: {ID: 3, CustomerID: 100, Status: domain.BookingStatusPending},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		20: {ID: 20, Email: "tech@autofuellanka.lk", Role: domain.RoleTechnician, Enabled: true},
		21: {ID: 21, Email: "tech2@autofuellanka.lk", Role: domain.RoleTechnician, Enabled: true},
		30: {ID: 30, Email: "staff@autofuellanka.lk", Role: domain.RoleStaff, Enabled: true},
	}}

	svc := NewJobService(JobDependencies{
		JobRepo:     jobs,
		BookingRepo: bookings,
		UserRepo:    users,
	})
	return svc, jobs, bookings
}

var staffActor = events.Actor{UserID: 30, Role: domain.RoleStaff}

func TestAssignCreatesQueuedJob(t *testing.T) {
	svc, _, _ := newJobFixture()

	job, err := svc.Assign(context.Background(), staffActor, 1, 20, "bay 3")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if job.Status != domain.JobStatusQueued {
		t.Errorf("status = %s, want QUEUED", job.Status)
	}
	if job.BookingID != 1 || job.TechnicianID != 20 {
		t.Errorf("unexpected job %+v", job)
	}
}

func TestAssignRejectsSecondJobOnBooking(t *testing.T) {
	svc, _, _ := newJobFixture()

	if _, err := svc.Assign(context.Background(), staffActor, 1, 20, ""); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if _, err := svc.Assign(context.Background(), staffActor, 1, 21, ""); err == nil {
		t.Fatal("expected error assigning a second job to the same booking")
	}
}

func TestAssignRejectsBusyTechnician(t *testing.T) {
	svc, _, _ := newJobFixture()

	if _, err := svc.Assign(context.Background(), staffActor, 1, 20, ""); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if _, err := svc.Assign(context.Background(), staffActor, 2, 20, ""); err == nil {
		t.Fatal("expected error assigning a busy technician")
	}
}

func TestAssignFreesTechnicianAfterDone(t *testing.T) {
	svc, _, _ := newJobFixture()

	job, err := svc.Assign(context.Background(), staffActor, 1, 20, "")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	techActor := events.Actor{UserID: 20, Role: domain.RoleTechnician}
	if _, err := svc.ChangeStatus(context.Background(), techActor, job.ID, domain.JobStatusInProgress, ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	done, err := svc.ChangeStatus(context.Background(), techActor, job.ID, domain.JobStatusDone, "all good")
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if done.CompletedAt == nil {
		t.Error("CompletedAt not set on DONE")
	}

	if _, err := svc.Assign(context.Background(), staffActor, 2, 20, ""); err != nil {
		t.Fatalf("expected technician free after DONE, got %v", err)
	}
}

func TestAssignRejectsNonTechnician(t *testing.T) {
	svc, _, _ := newJobFixture()

	if _, err := svc.Assign(context.Background(), staffActor, 1, 30, ""); err == nil {
		t.Fatal("expected error assigning a non-technician")
	}
}

func TestAssignRejectsUnconfirmedBooking(t *testing.T) {
	svc, _, _ := newJobFixture()

	if _, err := svc.Assign(context.Background(), staffActor, 3, 20, ""); err == nil {
		t.Fatal("expected error assigning a pending booking")
	}
}

func TestTechnicianCannotTouchOthersJob(t *testing.T) {
	svc, _, _ := newJobFixture()

	job, err := svc.Assign(context.Background(), staffActor, 1, 20, "")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	other := events.Actor{UserID: 21, Role: domain.RoleTechnician}
	if _, err := svc.ChangeStatus(context.Background(), other, job.ID, domain.JobStatusInProgress, ""); err == nil {
		t.Fatal("expected error for another technician's job")
	}
}

func TestJobStatusTransitionRules(t *testing.T) {
	svc, _, _ := newJobFixture()

	job, err := svc.Assign(context.Background(), staffActor, 1, 20, "")
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	// QUEUED cannot jump straight to DONE.
	if _, err := svc.ChangeStatus(context.Background(), staffActor, job.ID, domain.JobStatusDone, ""); err == nil {
		t.Fatal("expected error for QUEUED -> DONE")
	}
}
