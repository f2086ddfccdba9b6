package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("TrackingHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_events.id ASC")
		}).
		Where("id = ?", id).
		First(&o).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &o, nil
}

// Update persists a mutated order, including freshly appended tracking
// entries. Unknown ids fail explicitly.
func (r *OrderGormRepository) Update(
	ctx context.Context,
	o *models.Order,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", o.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(o).Error
}

func (r *OrderGormRepository) ListByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Order, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *OrderGormRepository) ListAll(
	ctx context.Context,
) ([]models.Order, error) {
	return r.list(ctx, "")
}

func (r *OrderGormRepository) list(
	ctx context.Context,
	cond string,
	args ...any,
) ([]models.Order, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Preload("Items").
		Preload("TrackingHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_events.id ASC")
		})
	if cond != "" {
		q = q.Where(cond, args...)
	}

	var orders []models.Order
	if err := q.
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
