package appointment

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

// Annotate updates the free-text notes, the one field that stays mutable on
// any appointment regardless of status.
type Annotate struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
}

func NewAnnotate(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
) *Annotate {
	return &Annotate{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
	}
}

func (uc *Annotate) Execute(
	ctx context.Context,
	id string,
	notes string,
	actor audit.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Annotate(ap, notes)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "appointment_annotated", "appointment", ap.ID, nil))
	mirrorAppointments(ctx, uc.repo, uc.mirror)

	return ap, nil
}
