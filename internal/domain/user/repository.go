package user

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	Update(ctx context.Context, u *models.User) error

	ListAll(ctx context.Context) ([]models.User, error)
}
