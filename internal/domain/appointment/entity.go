package appointment

import (
	"time"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// UpdateStatus moves an appointment to a new status via the transition table.
func UpdateStatus(ap *models.Appointment, to Status, now time.Time) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

// Reschedule moves the appointment to a new slot and returns it to scheduled.
// The new slot must differ from the current one; "rescheduled" is an action
// here, never a stored status.
func Reschedule(ap *models.Appointment, date string, timeStr string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}
	if date == "" || timeStr == "" {
		return httperr.ErrBusiness("missing_slot")
	}
	if date == ap.Date && timeStr == ap.Time {
		return httperr.ErrBusiness("slot_unchanged")
	}

	ap.Date = date
	ap.Time = timeStr
	ap.Status = string(StatusScheduled)
	return nil
}

// Annotate replaces the free-text notes; notes stay mutable post-creation.
func Annotate(ap *models.Appointment, notes string) {
	ap.Notes = notes
}
