package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &ap, nil
}

// Update saves an existing appointment. An unknown id is an explicit
// not-found, never an insert.
func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListByPatient(
	ctx context.Context,
	patientID string,
) ([]models.Appointment, error) {
	return r.list(ctx, "patient_id = ?", patientID)
}

func (r *AppointmentGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID string,
) ([]models.Appointment, error) {
	return r.list(ctx, "doctor_id = ?", doctorID)
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {
	return r.list(ctx, "")
}

func (r *AppointmentGormRepository) list(
	ctx context.Context,
	cond string,
	args ...any,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if cond != "" {
		q = q.Where(cond, args...)
	}

	var aps []models.Appointment
	if err := q.
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
