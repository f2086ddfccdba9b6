package order

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// TransitionOrder advances an order along the fulfilment chain or diverts it
// to cancelled/refunded. The transition table decides; every accepted move
// appends one tracking entry.
type TransitionOrder struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewTransitionOrder(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *TransitionOrder {
	return &TransitionOrder{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *TransitionOrder) Execute(
	ctx context.Context,
	id string,
	in domain.TransitionInput,
	actor audit.Actor,
) (*models.Order, error) {

	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := o.Status
	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(o, in, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(
		actor,
		"order_status_updated",
		"order",
		o.ID,
		map[string]string{"from": from, "to": string(in.To)},
	))
	mirrorOrders(ctx, uc.repo, uc.mirror)

	return o, nil
}
