package entities

import (
	"fmt"
	"strings"
)

// RequestStatus represents the lifecycle state of a service request.
//
// Domain notes:
//   - The canonical forward order is the physical flow of an extinguisher
//     through the service: pickup, recharge, return.
//   - Transition legality is decided by ValidateTransition alone; callers
//     never inspect the order directly.

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusCollected  RequestStatus = "COLLECTED"
	RequestStatusRecharging RequestStatus = "RECHARGING"
	RequestStatusReady      RequestStatus = "READY"
	RequestStatusDelivered  RequestStatus = "DELIVERED"
	RequestStatusDone       RequestStatus = "DONE"
)

// statusOrder is the canonical forward sequence. Index is the rank used by
// the transition rule.
var statusOrder = []RequestStatus{
	RequestStatusPending,
	RequestStatusCollected,
	RequestStatusRecharging,
	RequestStatusReady,
	RequestStatusDelivered,
	RequestStatusDone,
}

// AllRequestStatuses returns the canonical order, oldest lifecycle stage
// first. The returned slice is a copy.
func AllRequestStatuses() []RequestStatus {
	out := make([]RequestStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// ParseRequestStatus resolves a wire token (case-insensitive) against the
// fixed status set.
func ParseRequestStatus(token string) (RequestStatus, bool) {
	s := RequestStatus(strings.ToUpper(strings.TrimSpace(token)))
	if statusRank(s) < 0 {
		return "", false
	}
	return s, true
}

func statusRank(s RequestStatus) int {
	for i, v := range statusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// InvalidTransitionError reports a well-formed but illegal status move.
// RequestID is filled in by the caller that loaded the entity.

type InvalidTransitionError struct {
	RequestID string
	Current   RequestStatus
	Requested RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s (request %s)", e.Current, e.Requested, e.RequestID)
}

// ValidateTransition decides whether current -> next is a legal lifecycle
// move. Rules:
//   - DONE is terminal: nothing leaves it, not even DONE itself.
//   - Same-state moves are rejected as degenerate; they would only pad the
//     timeline with redundant entries.
//   - From PENDING any other state is legal, so operators can skip ahead to
//     correct data-entry mistakes.
//   - Otherwise forward moves are always legal and backward moves are legal
//     by exactly one canonical step.
//
// A nil return means the transition is accepted.
func ValidateTransition(current, next RequestStatus) *InvalidTransitionError {
	reject := func() *InvalidTransitionError {
		return &InvalidTransitionError{Current: current, Requested: next}
	}

	if current == RequestStatusDone {
		return reject()
	}
	if current == next {
		return reject()
	}
	if current == RequestStatusPending {
		return nil
	}

	currentRank := statusRank(current)
	nextRank := statusRank(next)
	if nextRank < currentRank-1 {
		return reject()
	}
	return nil
}
