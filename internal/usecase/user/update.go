package user

import (
	"context"
	"strings"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// UpdateUserInput carries the edit-form fields; nil pointers leave a field
// untouched.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Phone      *string
	Status     *string
	Specialty  *string
	Department *string
}

// ======================================================
// USE CASE
// ======================================================

// UpdateUser is the plain edit path. Approval-workflow statuses are guarded
// by the domain table; active/inactive toggling is an ordinary edit.
type UpdateUser struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
}

func NewUpdateUser(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
) *UpdateUser {
	return &UpdateUser{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id string,
	in UpdateUserInput,
	actor audit.Actor,
) (*models.User, error) {

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		next := domain.Status(*in.Status)
		if !domain.IsValid(next) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		if err := domain.CanEditStatus(domain.Status(u.Status), next); err != nil {
			return nil, err
		}
		u.Status = string(next)
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !validators.IsEmailSyntaxValid(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		u.Email = email
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Specialty != nil {
		u.Specialty = *in.Specialty
	}
	if in.Department != nil {
		u.Department = *in.Department
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "user_updated", "user", u.ID, nil))
	mirrorUsers(ctx, uc.repo, uc.mirror)

	return u, nil
}
