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

type Reschedule struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewReschedule(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *Reschedule {
	return &Reschedule{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	id string,
	date string,
	timeStr string,
	actor audit.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start, err := timezone.ParseSlot(uc.tz, date, timeStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if start.Before(timezone.NowIn(uc.tz)) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	prevDate, prevTime := ap.Date, ap.Time
	if err := domain.Reschedule(ap, date, timeStr); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(
		actor,
		"appointment_rescheduled",
		"appointment",
		ap.ID,
		map[string]string{
			"from_date": prevDate,
			"from_time": prevTime,
			"to_date":   date,
			"to_time":   timeStr,
		},
	))
	mirrorAppointments(ctx, uc.repo, uc.mirror)

	return ap, nil
}
