package user

import (
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// ===============================
// User Status
// ===============================

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

func IsValid(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Approval workflow
// ===============================

// Approve activates a pending user. Approving an already active user is a
// no-op, so a double click never produces a second side effect. The returned
// bool reports whether anything changed.
func Approve(u *models.User) (bool, error) {
	switch Status(u.Status) {
	case StatusActive:
		return false, nil
	case StatusPending:
		u.Status = string(StatusActive)
		return true, nil
	}
	return false, httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// Reject mirrors Approve for the rejection path.
func Reject(u *models.User) (bool, error) {
	switch Status(u.Status) {
	case StatusRejected:
		return false, nil
	case StatusPending:
		u.Status = string(StatusRejected)
		return true, nil
	}
	return false, httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// CanEditStatus guards the plain edit-form path: pending users only move
// through approve/reject, and rejected users stay rejected. Toggling
// active/inactive is an ordinary edit.
func CanEditStatus(current Status, next Status) error {
	if current == next {
		return nil
	}
	switch current {
	case StatusPending, StatusRejected:
		return httperr.ErrBusiness("requires_approval_workflow")
	}
	if next == StatusPending || next == StatusRejected {
		return httperr.ErrBusiness("requires_approval_workflow")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
