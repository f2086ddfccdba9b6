package order

import (
	"time"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// Place initializes a freshly created order: derived total, initial status
// and the first tracking entry. History starts aligned with the status so
// the last-entry invariant holds from entry one.
func Place(o *models.Order, now time.Time) error {
	if len(o.Items) == 0 {
		return httperr.ErrBusiness("empty_order")
	}
	for _, it := range o.Items {
		if it.Name == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return httperr.ErrBusiness("invalid_item")
		}
	}

	o.Status = string(InitialStatus())
	o.Total = o.ComputeTotal()
	if o.Date == "" {
		o.Date = now.Format(timezone.DateLayout)
	}

	appendEvent(o, InitialStatus(), now, "", "Order placed")
	return nil
}

type TransitionInput struct {
	To             Status
	TrackingNumber string
	Location       string
	Description    string
}

// Transition advances or diverts an order. Every accepted transition appends
// exactly one tracking entry whose status equals the order's new status.
func Transition(o *models.Order, in TransitionInput, now time.Time) error {
	if !IsValid(in.To) {
		return httperr.ErrBusiness("invalid_status")
	}
	if err := CanTransition(Status(o.Status), in.To); err != nil {
		return err
	}

	if RequiresTracking(in.To) {
		if in.TrackingNumber == "" && o.TrackingNumber == "" {
			return httperr.ErrBusiness("tracking_number_required")
		}
	}

	if in.TrackingNumber != "" {
		o.TrackingNumber = in.TrackingNumber
	}

	o.Status = string(in.To)

	desc := in.Description
	if desc == "" {
		desc = describe(in.To)
	}
	appendEvent(o, in.To, now, in.Location, desc)
	return nil
}

func appendEvent(o *models.Order, s Status, now time.Time, location string, description string) {
	o.TrackingHistory = append(o.TrackingHistory, models.TrackingEvent{
		OrderID:     o.ID,
		Status:      string(s),
		Date:        now.Format(timezone.DateLayout),
		Time:        now.Format(timezone.TimeLayout),
		Location:    location,
		Description: description,
	})
}

func describe(s Status) string {
	switch s {
	case StatusProcessing:
		return "Order placed"
	case StatusPacked:
		return "Order packed and ready for dispatch"
	case StatusShipped:
		return "Order handed to the carrier"
	case StatusDelivered:
		return "Order delivered"
	case StatusCancelled:
		return "Order cancelled"
	case StatusRefunded:
		return "Order refunded"
	}
	return string(s)
}
