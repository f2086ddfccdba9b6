package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func TestUserMemoryRepositoryCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	u := &models.User{Name: "Maria", Email: "maria@example.com", Status: "pending"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", got.Email)
}

// Updating an id that does not exist must fail and must not insert.
func TestUserMemoryRepositoryUpdateAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	seed := &models.User{Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, repo.Create(ctx, seed))

	ghost := &models.User{Name: "Ghost", Email: "ghost@example.com"}
	ghost.ID = "no-such-id"
	err := repo.Update(ctx, ghost)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserMemoryRepositoryGetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	u := &models.User{Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "absent@example.com")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// Reads hand back copies; mutating a result never leaks into the store.
func TestAppointmentMemoryRepositoryIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	ap := &models.Appointment{PatientID: "p1", DoctorID: "d1", Date: "2026-06-01", Status: "scheduled"}
	require.NoError(t, repo.Create(ctx, ap))

	got, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	got.Status = "cancelled"

	again, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", again.Status)
}

func TestAppointmentMemoryRepositoryScopedLists(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentMemoryRepository()

	for _, seed := range []models.Appointment{
		{PatientID: "p1", DoctorID: "d1", Date: "2026-06-01", Status: "scheduled"},
		{PatientID: "p1", DoctorID: "d2", Date: "2026-06-02", Status: "scheduled"},
		{PatientID: "p2", DoctorID: "d1", Date: "2026-06-03", Status: "scheduled"},
	} {
		s := seed
		require.NoError(t, repo.Create(ctx, &s))
	}

	byPatient, err := repo.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, byPatient, 2)

	byDoctor, err := repo.ListByDoctor(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, byDoctor, 2)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Insertion order is preserved.
	assert.Equal(t, "2026-06-01", all[0].Date)
	assert.Equal(t, "2026-06-03", all[2].Date)
}

func TestOrderMemoryRepositoryUpdatePersistsHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository()

	o := &models.Order{
		CustomerID: "p1",
		Status:     "processing",
		Items:      []models.OrderItem{{Name: "Gauze", Quantity: 1, UnitPrice: 3}},
		TrackingHistory: []models.TrackingEvent{
			{Status: "processing", Description: "Order placed"},
		},
	}
	require.NoError(t, repo.Create(ctx, o))

	o.Status = "packed"
	o.TrackingHistory = append(o.TrackingHistory, models.TrackingEvent{Status: "packed"})
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "packed", got.Status)
	assert.Len(t, got.TrackingHistory, 2)
}
