package user

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

type RejectUser struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
}

func NewRejectUser(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
) *RejectUser {
	return &RejectUser{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
	}
}

func (uc *RejectUser) Execute(
	ctx context.Context,
	id string,
	actor audit.Actor,
) (*models.User, error) {

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := domain.Reject(u)
	if err != nil {
		return nil, err
	}
	if !changed {
		return u, nil
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "user_rejected", "user", u.ID, nil))
	mirrorUsers(ctx, uc.repo, uc.mirror)

	return u, nil
}
