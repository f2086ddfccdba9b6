package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type PrescriptionGormRepository struct {
	db *gorm.DB
}

func NewPrescriptionGormRepository(db *gorm.DB) *PrescriptionGormRepository {
	return &PrescriptionGormRepository{db: db}
}

func (r *PrescriptionGormRepository) Create(
	ctx context.Context,
	p *models.Prescription,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Prescription, error) {

	var p models.Prescription
	if err := r.db.WithContext(ctx).
		Preload("Medications").
		Where("id = ?", id).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionGormRepository) Update(
	ctx context.Context,
	p *models.Prescription,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Where("id = ?", p.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(p).Error
}

func (r *PrescriptionGormRepository) ListByPatient(
	ctx context.Context,
	patientID string,
) ([]models.Prescription, error) {
	return r.list(ctx, "patient_id = ?", patientID)
}

func (r *PrescriptionGormRepository) ListAll(
	ctx context.Context,
) ([]models.Prescription, error) {
	return r.list(ctx, "")
}

func (r *PrescriptionGormRepository) list(
	ctx context.Context,
	cond string,
	args ...any,
) ([]models.Prescription, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Preload("Medications")
	if cond != "" {
		q = q.Where(cond, args...)
	}

	var out []models.Prescription
	if err := q.
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*PrescriptionGormRepository)(nil)
