package query

import (
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// ===============================
// Appointment projection
// ===============================

type AppointmentTab string

const (
	TabToday    AppointmentTab = "today"
	TabUpcoming AppointmentTab = "upcoming"
	TabPast     AppointmentTab = "past"
)

type AppointmentFilter struct {
	// Ownership scope; empty means unscoped (admin view).
	PatientID string
	DoctorID  string

	// Status is a plain equality tab.
	Status domain.Status

	// Tab is one of the date buckets. Today is the caller's current
	// calendar-date string, so the projection stays pure.
	Tab   AppointmentTab
	Today string

	Search string
}

// Appointments derives the display view for one role and tab. It never
// mutates the input and preserves its order.
func Appointments(in []models.Appointment, f AppointmentFilter) []models.Appointment {
	out := make([]models.Appointment, 0, len(in))

	for _, ap := range in {
		if f.PatientID != "" && ap.PatientID != f.PatientID {
			continue
		}
		if f.DoctorID != "" && ap.DoctorID != f.DoctorID {
			continue
		}
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		if !inBucket(ap, f.Tab, f.Today) {
			continue
		}
		if !matchAny(f.Search,
			ap.PatientName,
			ap.DoctorName,
			ap.DoctorSpecialty,
			ap.Reason,
			ap.ID,
		) {
			continue
		}
		out = append(out, ap)
	}

	return out
}

// inBucket compares calendar-date strings; scheduled and confirmed count the
// same for "upcoming", anything terminal belongs to "past".
func inBucket(ap models.Appointment, tab AppointmentTab, today string) bool {
	switch tab {
	case TabToday:
		return ap.Date == today
	case TabUpcoming:
		if domain.IsTerminal(domain.Status(ap.Status)) {
			return false
		}
		return ap.Date >= today
	case TabPast:
		return ap.Date < today || domain.IsTerminal(domain.Status(ap.Status))
	}
	return true
}
