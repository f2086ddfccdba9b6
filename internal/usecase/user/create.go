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

type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     models.Role

	Specialty  string
	Department string
}

// ======================================================
// USE CASE
// ======================================================

// CreateUser registers a new account in pending status; activation goes
// through the approval workflow.
type CreateUser struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror

	// domainValid does DNS lookups in production; tests stub it out.
	domainValid func(string) bool
}

func NewCreateUser(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
) *CreateUser {
	return &CreateUser{
		repo:        repo,
		audit:       auditD,
		mirror:      mirror,
		domainValid: validators.IsEmailDomainValid,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
	actor audit.Actor,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if !uc.domainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}
	if !models.IsValidRole(in.Role) {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	if _, err := uc.repo.GetByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_taken")
	}

	u := &models.User{
		Name:       strings.TrimSpace(in.Name),
		Email:      email,
		Phone:      in.Phone,
		Role:       in.Role,
		Status:     string(domain.InitialStatus()),
		Specialty:  in.Specialty,
		Department: in.Department,
	}

	if in.Password != "" {
		if err := u.SetPassword(in.Password); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "user_created", "user", u.ID, nil))
	mirrorUsers(ctx, uc.repo, uc.mirror)

	return u, nil
}
