package user

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

type ApproveUser struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
}

func NewApproveUser(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
) *ApproveUser {
	return &ApproveUser{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
	}
}

// Execute activates a pending user. A repeated approval returns the user
// untouched without a second audit entry.
func (uc *ApproveUser) Execute(
	ctx context.Context,
	id string,
	actor audit.Actor,
) (*models.User, error) {

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := domain.Approve(u)
	if err != nil {
		return nil, err
	}
	if !changed {
		return u, nil
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "user_approved", "user", u.ID, nil))
	mirrorUsers(ctx, uc.repo, uc.mirror)

	return u, nil
}
