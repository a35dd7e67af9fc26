package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a status change is not an edge of
// the lifecycle table. The order is left unchanged.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status is the lifecycle state of an order.
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivering ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Delivering
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Preparing:  "preparing",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions is the complete lifecycle table. Statuses absent from the
// table, or mapped to no targets, are terminal.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no outgoing edges
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Preparing, Cancelled},
		Preparing:  {Ready},
		Ready:      {Delivering},
		Delivering: {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// ParseStatus maps the persisted and wire form ("pending", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// Next lists the statuses reachable from s in one step.
func (s Status) Next() []Status {
	next := getTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to if the table has the edge s -> to.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, to)
	}
	return to, nil
}
