package appointment

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

// mirrorAppointments re-serializes the full collection after a mutation.
// Best-effort: the mirror itself logs failures.
func mirrorAppointments(ctx context.Context, repo domain.Repository, m *snapshot.Mirror) {
	if m == nil {
		return
	}
	if list, err := repo.ListAll(ctx); err == nil {
		m.Write(ctx, snapshot.KeyAppointments, list)
	}
}
