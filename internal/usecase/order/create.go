package order

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type CreateOrderInput struct {
	CustomerID string
	Items      []ItemInput
}

// ======================================================
// USE CASE
// ======================================================

// CreateOrder registers an order handed over from checkout; the checkout
// flow itself lives elsewhere.
type CreateOrder struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewCreateOrder(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *CreateOrder {
	return &CreateOrder{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
	actor audit.Actor,
) (*models.Order, error) {

	if in.CustomerID == "" {
		return nil, httperr.ErrBusiness("missing_customer")
	}

	o := &models.Order{
		CustomerID: in.CustomerID,
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, models.OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Place(o, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "order_placed", "order", o.ID, nil))
	mirrorOrders(ctx, uc.repo, uc.mirror)

	return o, nil
}
