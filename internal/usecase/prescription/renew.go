package prescription

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// RenewPrescription expires the prior record and creates its replacement.
// Medications are copied, never edited in place.
type RenewPrescription struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewRenewPrescription(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *RenewPrescription {
	return &RenewPrescription{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *RenewPrescription) Execute(
	ctx context.Context,
	id string,
	actor audit.Actor,
) (*models.Prescription, error) {

	prior, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	wasActive := prior.Status == string(domain.StatusActive)

	next := domain.Renew(prior, now)

	if wasActive {
		if err := uc.repo.Update(ctx, prior); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(ctx, next); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(
		actor,
		"prescription_renewed",
		"prescription",
		next.ID,
		map[string]string{"renewed_from": prior.ID},
	))
	mirrorPrescriptions(ctx, uc.repo, uc.mirror)

	return next, nil
}
