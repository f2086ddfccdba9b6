package order

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, o *models.Order) error

	GetByID(ctx context.Context, id string) (*models.Order, error)

	Update(ctx context.Context, o *models.Order) error

	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)

	ListAll(ctx context.Context) ([]models.Order, error)
}
