package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// AppointmentMemoryRepository keeps the collection in insertion order. It
// backs tests and snapshot reloads with the same semantics as the gorm
// repository.
type AppointmentMemoryRepository struct {
	mu   sync.RWMutex
	list []models.Appointment
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{}
}

func (r *AppointmentMemoryRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.New().String()
	}
	r.list = append(r.list, *ap)
	return nil
}

func (r *AppointmentMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.list {
		if r.list[i].ID == id {
			ap := r.list[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *AppointmentMemoryRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.list {
		if r.list[i].ID == ap.ID {
			r.list[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *AppointmentMemoryRepository) ListByPatient(
	ctx context.Context,
	patientID string,
) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return ap.PatientID == patientID
	}), nil
}

func (r *AppointmentMemoryRepository) ListByDoctor(
	ctx context.Context,
	doctorID string,
) ([]models.Appointment, error) {
	return r.filter(func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID
	}), nil
}

func (r *AppointmentMemoryRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {
	return r.filter(func(models.Appointment) bool { return true }), nil
}

func (r *AppointmentMemoryRepository) filter(
	keep func(models.Appointment) bool,
) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.list))
	for _, ap := range r.list {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
