package order

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/dto"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/query"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	f query.OrderFilter,
) ([]dto.OrderListDTO, error) {

	var (
		orders []models.Order
		err    error
	)

	if f.CustomerID != "" {
		orders, err = uc.repo.ListByCustomer(ctx, f.CustomerID)
	} else {
		orders, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := query.Orders(orders, f)

	out := make([]dto.OrderListDTO, 0, len(filtered))
	for _, o := range filtered {
		out = append(out, dto.OrderListDTO{
			ID:             o.ID,
			Date:           o.Date,
			Status:         o.Status,
			Total:          o.Total,
			ItemCount:      len(o.Items),
			TrackingNumber: o.TrackingNumber,
		})
	}

	return out, nil
}
