package prescription

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Prescription) error

	GetByID(ctx context.Context, id string) (*models.Prescription, error)

	Update(ctx context.Context, p *models.Prescription) error

	ListByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)

	ListAll(ctx context.Context) ([]models.Prescription, error)
}
