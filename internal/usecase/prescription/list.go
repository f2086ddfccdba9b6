package prescription

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/query"
)

type ListPrescriptions struct {
	repo domain.Repository
}

func NewListPrescriptions(repo domain.Repository) *ListPrescriptions {
	return &ListPrescriptions{repo: repo}
}

func (uc *ListPrescriptions) Execute(
	ctx context.Context,
	f query.PrescriptionFilter,
) ([]models.Prescription, error) {

	var (
		list []models.Prescription
		err  error
	)

	if f.PatientID != "" {
		list, err = uc.repo.ListByPatient(ctx, f.PatientID)
	} else {
		list, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return query.Prescriptions(list, f), nil
}
