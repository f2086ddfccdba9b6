package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type PrescriptionMemoryRepository struct {
	mu   sync.RWMutex
	list []models.Prescription
}

func NewPrescriptionMemoryRepository() *PrescriptionMemoryRepository {
	return &PrescriptionMemoryRepository{}
}

func (r *PrescriptionMemoryRepository) Create(
	ctx context.Context,
	p *models.Prescription,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.list = append(r.list, *p)
	return nil
}

func (r *PrescriptionMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.list {
		if r.list[i].ID == id {
			p := r.list[i]
			return &p, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *PrescriptionMemoryRepository) Update(
	ctx context.Context,
	p *models.Prescription,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.list {
		if r.list[i].ID == p.ID {
			r.list[i] = *p
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *PrescriptionMemoryRepository) ListByPatient(
	ctx context.Context,
	patientID string,
) ([]models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Prescription, 0, len(r.list))
	for _, p := range r.list {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PrescriptionMemoryRepository) ListAll(
	ctx context.Context,
) ([]models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Prescription, len(r.list))
	copy(out, r.list)
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*PrescriptionMemoryRepository)(nil)
