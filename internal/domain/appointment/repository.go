package appointment

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// Repository is the appointment store. Both the gorm and the in-memory
// backends implement it; GetByID and Update return record_not_found for
// unknown ids instead of silently no-opping.
type Repository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)

	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)

	ListAll(ctx context.Context) ([]models.Appointment, error)
}
