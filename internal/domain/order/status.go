package order

import "github.com/HealthHubServices/healthhub-api/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusProcessing Status = "processing"
	StatusPacked     Status = "packed"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// rank orders the fulfilment chain. Transitions may move forward, also
// jumping steps, but never backward.
var rank = map[Status]int{
	StatusProcessing: 0,
	StatusPacked:     1,
	StatusShipped:    2,
	StatusDelivered:  3,
}

func IsValid(s Status) bool {
	switch s {
	case StatusProcessing, StatusPacked, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// IsDiversion reports the two off-chain exits.
func IsDiversion(s Status) bool {
	return s == StatusCancelled || s == StatusRefunded
}

// CanTransition validates a move: forward on the chain, or a diversion from
// any state short of delivered.
func CanTransition(from Status, to Status) error {
	if IsTerminal(from) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if IsDiversion(to) {
		return nil
	}
	if rank[to] > rank[from] {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// RequiresTracking marks the side-field each transition demands.
func RequiresTracking(to Status) bool {
	return to == StatusShipped
}

func InitialStatus() Status {
	return StatusProcessing
}
