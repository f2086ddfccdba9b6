package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type UserMemoryRepository struct {
	mu   sync.RWMutex
	list []models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{}
}

func (r *UserMemoryRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.list = append(r.list, *u)
	return nil
}

func (r *UserMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.list {
		if r.list[i].ID == id {
			u := r.list[i]
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *UserMemoryRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.list {
		if r.list[i].Email == email {
			u := r.list[i]
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *UserMemoryRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.list {
		if r.list[i].ID == u.ID {
			r.list[i] = *u
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (r *UserMemoryRepository) ListAll(
	ctx context.Context,
) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.list))
	copy(out, r.list)
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*UserMemoryRepository)(nil)
