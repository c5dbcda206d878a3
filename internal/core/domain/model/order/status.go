package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so
// orders follow the kitchen workflow.
//
// State transitions:
//
//	PENDING ──> PREPARING ──> READY ──> DELIVERED
//	    ^           │   ^        │
//	    └───────────┘   └────────┘
//	      (backward corrections allowed)
//
// Any non-terminal status may transition to CANCELLED.
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// The kitchen has not started working on the order yet.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is prepared and awaiting pickup or delivery.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was called off. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getTransitionTable returns the set of allowed status edges.
// Terminal statuses have no outgoing edges.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Pending, Cancelled},
		Ready:     {Delivered, Preparing, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a wire-format status value such as "PENDING".
// Returns a validation error naming the status field for unrecognized values.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", value))
}

// Validate checks if the Status value is one of the five recognized statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "PREPARING".
// Invalid values return "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitionTable()[s]) == 0 && s.Validate() == nil
}

// TransitionTo validates and performs a transition to the target status.
//
// Returns:
//   - (target, nil) when the edge exists in the transition table
//   - (0, error) naming the attempted edge when it does not
//
// Both statuses must be valid; transitioning a status to itself is not
// an edge of the table and is rejected like any other missing edge.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("transition from %s to %s is not allowed", s, target))
}
