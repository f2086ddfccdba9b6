package user

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/query"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	f query.UserFilter,
) ([]models.User, error) {

	users, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return query.Users(users, f), nil
}
