package appointment

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

type UpdateStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewUpdateStatus(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id string,
	to domain.Status,
	actor audit.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := ap.Status
	now := timezone.NowIn(uc.tz)
	if err := domain.UpdateStatus(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(
		actor,
		"appointment_status_updated",
		"appointment",
		ap.ID,
		map[string]string{"from": from, "to": string(to)},
	))
	mirrorAppointments(ctx, uc.repo, uc.mirror)

	return ap, nil
}
