package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func ap(id, patientID, doctorID, date, status string) models.Appointment {
	a := models.Appointment{
		PatientID:   patientID,
		PatientName: "Patient " + patientID,
		DoctorID:    doctorID,
		DoctorName:  "Dr. " + doctorID,
		Date:        date,
		Status:      status,
	}
	a.ID = id
	return a
}

func TestAppointmentsScoping(t *testing.T) {
	in := []models.Appointment{
		ap("a1", "p1", "d1", "2026-06-01", "scheduled"),
		ap("a2", "p2", "d1", "2026-06-01", "scheduled"),
		ap("a3", "p1", "d2", "2026-06-02", "confirmed"),
	}

	out := Appointments(in, AppointmentFilter{PatientID: "p1"})
	require.Len(t, out, 2)
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, "a3", out[1].ID)

	out = Appointments(in, AppointmentFilter{DoctorID: "d1"})
	require.Len(t, out, 2)

	out = Appointments(in, AppointmentFilter{})
	assert.Len(t, out, 3)
}

func TestAppointmentsTabs(t *testing.T) {
	today := "2026-06-15"
	in := []models.Appointment{
		ap("today", "p1", "d1", today, "scheduled"),
		ap("upcoming-scheduled", "p1", "d1", "2026-06-20", "scheduled"),
		ap("upcoming-confirmed", "p1", "d1", "2026-06-21", "confirmed"),
		ap("cancelled-future", "p1", "d1", "2026-06-22", "cancelled"),
		ap("past-date", "p1", "d1", "2026-06-01", "completed"),
	}

	out := Appointments(in, AppointmentFilter{Tab: TabToday, Today: today})
	require.Len(t, out, 1)
	assert.Equal(t, "today", out[0].ID)

	// Scheduled and confirmed both count as upcoming; terminal never does.
	out = Appointments(in, AppointmentFilter{Tab: TabUpcoming, Today: today})
	require.Len(t, out, 3)
	assert.Equal(t, "today", out[0].ID)
	assert.Equal(t, "upcoming-scheduled", out[1].ID)
	assert.Equal(t, "upcoming-confirmed", out[2].ID)

	// Past collects earlier dates plus anything terminal regardless of date.
	out = Appointments(in, AppointmentFilter{Tab: TabPast, Today: today})
	require.Len(t, out, 2)
	assert.Equal(t, "cancelled-future", out[0].ID)
	assert.Equal(t, "past-date", out[1].ID)
}

func TestAppointmentsSearch(t *testing.T) {
	a := ap("a1", "p1", "d1", "2026-06-01", "scheduled")
	a.DoctorName = "Dr. Amara Okafor"
	a.Reason = "Annual check-up"

	b := ap("a2", "p2", "d2", "2026-06-01", "scheduled")
	b.DoctorName = "Dr. Chen"
	b.Reason = "Back pain"

	in := []models.Appointment{a, b}

	out := Appointments(in, AppointmentFilter{Search: "okafor"})
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)

	out = Appointments(in, AppointmentFilter{Search: "PAIN"})
	require.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].ID)

	out = Appointments(in, AppointmentFilter{Search: "nobody"})
	assert.Empty(t, out)
}

func TestAppointmentsStatusFilter(t *testing.T) {
	in := []models.Appointment{
		ap("a1", "p1", "d1", "2026-06-01", "scheduled"),
		ap("a2", "p1", "d1", "2026-06-01", "cancelled"),
	}

	out := Appointments(in, AppointmentFilter{Status: domain.StatusCancelled})
	require.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].ID)
}

func TestAppointmentsDoesNotMutateInput(t *testing.T) {
	in := []models.Appointment{
		ap("a1", "p1", "d1", "2026-06-01", "scheduled"),
		ap("a2", "p2", "d1", "2026-06-02", "confirmed"),
	}

	_ = Appointments(in, AppointmentFilter{PatientID: "p2"})

	assert.Equal(t, "a1", in[0].ID)
	assert.Equal(t, "a2", in[1].ID)
	assert.Equal(t, "scheduled", in[0].Status)
}
