package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/infra/repository"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func seedAppointment(t *testing.T, repo *repository.AppointmentMemoryRepository, status string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2099-01-10",
		Time:      "10:00",
		Status:    status,
	}
	require.NoError(t, repo.Create(context.Background(), ap))
	return ap
}

func TestRescheduleReturnsToScheduled(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentMemoryRepository()
	ap := seedAppointment(t, repo, string(domain.StatusConfirmed))

	uc := NewReschedule(repo, nil, nil, "UTC")
	out, err := uc.Execute(ctx, ap.ID, "2099-01-12", "14:30", audit.Actor{ID: "p1", Role: string(models.RolePatient)})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), out.Status)
	assert.Equal(t, "2099-01-12", out.Date)
	assert.Equal(t, "14:30", out.Time)

	stored, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), stored.Status)
}

func TestRescheduleRejectsPastSlot(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentMemoryRepository()
	ap := seedAppointment(t, repo, string(domain.StatusScheduled))

	uc := NewReschedule(repo, nil, nil, "UTC")
	_, err := uc.Execute(ctx, ap.ID, "2000-01-01", "09:00", audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "slot_in_past"))
}

func TestRescheduleRejectsCompleted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentMemoryRepository()
	ap := seedAppointment(t, repo, string(domain.StatusCompleted))

	uc := NewReschedule(repo, nil, nil, "UTC")
	_, err := uc.Execute(ctx, ap.ID, "2099-02-01", "09:00", audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppointmentMemoryRepository()

	uc := NewBookAppointment(repo, nil, nil, "UTC")
	out, err := uc.Execute(ctx, BookAppointmentInput{
		PatientID:  "p1",
		DoctorID:   "d1",
		DoctorName: "Dr. Chen",
		Date:       "2099-03-01",
		Time:       "11:00",
		Reason:     "Annual check-up",
	}, audit.Actor{ID: "p1", Role: string(models.RolePatient)})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), out.Status)
	assert.Equal(t, models.AppointmentTypeConsultation, out.Type)
	assert.NotEmpty(t, out.ID)
}

func TestBookAppointmentRejectsPastSlot(t *testing.T) {
	ctx := context.Background()
	uc := NewBookAppointment(repository.NewAppointmentMemoryRepository(), nil, nil, "UTC")

	_, err := uc.Execute(ctx, BookAppointmentInput{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2000-01-01",
		Time:      "09:00",
	}, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "slot_in_past"))
}

func TestUpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	uc := NewUpdateStatus(repository.NewAppointmentMemoryRepository(), nil, nil, "UTC")

	_, err := uc.Execute(ctx, "absent", domain.StatusConfirmed, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
