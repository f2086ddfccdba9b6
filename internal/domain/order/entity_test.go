package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func newOrder() *models.Order {
	return &models.Order{
		CustomerID: "patient-1",
		Items: []models.OrderItem{
			{Name: "Ibuprofen 400mg", Quantity: 2, UnitPrice: 5.50},
			{Name: "Vitamin D", Quantity: 1, UnitPrice: 12.00},
		},
	}
}

func TestPlaceSeedsHistory(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	o := newOrder()
	require.NoError(t, Place(o, now))

	assert.Equal(t, string(StatusProcessing), o.Status)
	assert.Equal(t, 23.0, o.Total)
	assert.Equal(t, "2026-02-01", o.Date)

	require.Len(t, o.TrackingHistory, 1)
	assert.Equal(t, string(StatusProcessing), o.TrackingHistory[0].Status)
	assert.Equal(t, "Order placed", o.TrackingHistory[0].Description)
}

func TestPlaceRejectsEmptyOrder(t *testing.T) {
	o := &models.Order{CustomerID: "patient-1"}
	err := Place(o, time.Now())
	assert.True(t, httperr.IsBusiness(err, "empty_order"))
}

func TestPlaceRejectsInvalidItem(t *testing.T) {
	o := &models.Order{
		CustomerID: "patient-1",
		Items:      []models.OrderItem{{Name: "Aspirin", Quantity: 0, UnitPrice: 3}},
	}
	err := Place(o, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_item"))
}

// Every accepted transition appends exactly one entry, and the last entry's
// status always equals the order's current status.
func TestTransitionAppendsOneEvent(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	o := newOrder()
	require.NoError(t, Place(o, now))

	steps := []TransitionInput{
		{To: StatusPacked},
		{To: StatusShipped, TrackingNumber: "TRK1"},
		{To: StatusDelivered},
	}

	for i, step := range steps {
		require.NoError(t, Transition(o, step, now))
		require.Len(t, o.TrackingHistory, i+2)
		last := o.TrackingHistory[len(o.TrackingHistory)-1]
		assert.Equal(t, o.Status, last.Status)
	}

	assert.Equal(t, "TRK1", o.TrackingNumber)
}

func TestTransitionShippedRequiresTracking(t *testing.T) {
	now := time.Now()

	o := newOrder()
	require.NoError(t, Place(o, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusPacked}, now))

	before := len(o.TrackingHistory)
	err := Transition(o, TransitionInput{To: StatusShipped}, now)
	assert.True(t, httperr.IsBusiness(err, "tracking_number_required"))
	assert.Equal(t, string(StatusPacked), o.Status)
	assert.Len(t, o.TrackingHistory, before)
}

// Shipping straight from processing is a legal forward jump.
func TestTransitionShipsFromProcessing(t *testing.T) {
	now := time.Now()

	o := newOrder()
	require.NoError(t, Place(o, now))
	require.Len(t, o.TrackingHistory, 1)

	require.NoError(t, Transition(o, TransitionInput{To: StatusShipped, TrackingNumber: "TRK1"}, now))

	assert.Equal(t, string(StatusShipped), o.Status)
	assert.Equal(t, "TRK1", o.TrackingNumber)
	require.Len(t, o.TrackingHistory, 2)
	assert.Equal(t, string(StatusShipped), o.TrackingHistory[1].Status)
}

func TestTransitionRejectsBackwardMoves(t *testing.T) {
	now := time.Now()

	o := newOrder()
	require.NoError(t, Place(o, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusPacked}, now))

	err := Transition(o, TransitionInput{To: StatusProcessing}, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(StatusPacked), o.Status)
}

func TestTransitionDiversions(t *testing.T) {
	now := time.Now()

	// Cancelling straight from processing is allowed.
	o := newOrder()
	require.NoError(t, Place(o, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusCancelled}, now))
	assert.Equal(t, string(StatusCancelled), o.Status)

	// Refunding a shipped order is allowed.
	o = newOrder()
	require.NoError(t, Place(o, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusPacked}, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusShipped, TrackingNumber: "TRK2"}, now))
	require.NoError(t, Transition(o, TransitionInput{To: StatusRefunded}, now))
	assert.Equal(t, string(StatusRefunded), o.Status)
}

func TestTransitionRejectsFromTerminal(t *testing.T) {
	now := time.Now()

	for _, terminal := range []Status{StatusDelivered, StatusCancelled, StatusRefunded} {
		o := newOrder()
		o.Status = string(terminal)
		err := Transition(o, TransitionInput{To: StatusCancelled}, now)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), string(terminal))
	}
}
