package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/infra/repository"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func newCreateUser(repo domain.Repository) *CreateUser {
	uc := NewCreateUser(repo, nil, nil)
	uc.domainValid = func(string) bool { return true }
	return uc
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserMemoryRepository()
	uc := newCreateUser(repo)

	u, err := uc.Execute(ctx, CreateUserInput{
		Name:     "Maria Santos",
		Email:    " Maria@Example.com ",
		Password: "s3cret",
		Role:     models.RolePatient,
	}, audit.Actor{Role: string(models.RoleAdmin)})
	require.NoError(t, err)

	assert.Equal(t, "maria@example.com", u.Email)
	assert.Equal(t, string(domain.StatusPending), u.Status)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserMemoryRepository()
	uc := newCreateUser(repo)

	in := CreateUserInput{Name: "Maria", Email: "maria@example.com", Role: models.RolePatient}
	_, err := uc.Execute(ctx, in, audit.Actor{})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, in, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "email_taken"))
}

func TestCreateUserRejectsBadEmailSyntax(t *testing.T) {
	ctx := context.Background()
	uc := newCreateUser(repository.NewUserMemoryRepository())

	_, err := uc.Execute(ctx, CreateUserInput{
		Name:  "Maria",
		Email: "not-an-email",
		Role:  models.RolePatient,
	}, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

// A syntactically fine address on an unresolvable domain is rejected before
// anything is stored.
func TestCreateUserRejectsUnresolvableDomain(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserMemoryRepository()

	uc := NewCreateUser(repo, nil, nil)
	uc.domainValid = func(string) bool { return false }

	_, err := uc.Execute(ctx, CreateUserInput{
		Name:  "Maria",
		Email: "maria@nxdomain.example",
		Role:  models.RolePatient,
	}, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	uc := newCreateUser(repository.NewUserMemoryRepository())

	_, err := uc.Execute(ctx, CreateUserInput{
		Name:  "Maria",
		Email: "maria@example.com",
		Role:  models.Role("superuser"),
	}, audit.Actor{})
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}
