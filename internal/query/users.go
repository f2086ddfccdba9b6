package query

import (
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type UserFilter struct {
	Role   models.Role
	Status domain.Status
	Search string
}

// Users derives the admin user-management view.
func Users(in []models.User, f UserFilter) []models.User {
	out := make([]models.User, 0, len(in))

	for _, u := range in {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != string(f.Status) {
			continue
		}
		if !matchAny(f.Search, u.Name, u.Email, u.Phone, u.ID) {
			continue
		}
		out = append(out, u)
	}

	return out
}
