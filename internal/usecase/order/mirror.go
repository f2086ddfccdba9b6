package order

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

func mirrorOrders(ctx context.Context, repo domain.Repository, m *snapshot.Mirror) {
	if m == nil {
		return
	}
	if list, err := repo.ListAll(ctx); err == nil {
		m.Write(ctx, snapshot.KeyOrders, list)
	}
}
