package appointment

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID   string
	PatientName string

	DoctorID        string
	DoctorName      string
	DoctorSpecialty string

	Date string
	Time string

	Type   string
	Reason string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment serves both the patient booking form and the doctor
// scheduling form; only the audit attribution differs.
type BookAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewBookAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
	actor audit.Actor,
) (*models.Appointment, error) {

	if in.PatientID == "" || in.DoctorID == "" {
		return nil, httperr.ErrBusiness("missing_participants")
	}

	start, err := timezone.ParseSlot(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	apType := in.Type
	if apType == "" {
		apType = models.AppointmentTypeConsultation
	}

	ap := &models.Appointment{
		PatientID:       in.PatientID,
		PatientName:     in.PatientName,
		DoctorID:        in.DoctorID,
		DoctorName:      in.DoctorName,
		DoctorSpecialty: in.DoctorSpecialty,
		Date:            in.Date,
		Time:            in.Time,
		Type:            apType,
		Status:          string(domain.InitialStatus()),
		Reason:          in.Reason,
		Notes:           in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "appointment_booked", "appointment", ap.ID, nil))
	mirrorAppointments(ctx, uc.repo, uc.mirror)

	return ap, nil
}
