package appointment

import "github.com/HealthHubServices/healthhub-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// ===============================
// Transition table
// ===============================

// transitions is the single source of truth for reachable statuses. Every
// page-facing handler goes through it; none re-derives the rules inline.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports statuses from which no further transition exists.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// CanTransition validates a status move against the table.
func CanTransition(from Status, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// CanReschedule allows any non-terminal appointment to be moved to a new slot.
func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
