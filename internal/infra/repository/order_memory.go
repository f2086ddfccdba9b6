package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type OrderMemoryRepository struct {
	mu   sync.RWMutex
	list []models.Order
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{}
}

func (r *OrderMemoryRepository) Create(
	ctx context.Context,
	o *models.Order,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	r.list = append(r.list, *o)
	return nil
}

func (r *OrderMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.list {
		if r.list[i].ID == id {
			o := r.list[i]
			return &o, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *OrderMemoryRepository) Update(
	ctx context.Context,
	o *models.Order,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.list {
		if r.list[i].ID == o.ID {
			r.list[i] = *o
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *OrderMemoryRepository) ListByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.list))
	for _, o := range r.list {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderMemoryRepository) ListAll(
	ctx context.Context,
) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.list))
	copy(out, r.list)
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*OrderMemoryRepository)(nil)
