package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle carries one hard rule: Completed is terminal. Pending and
// InProgress may move to each other and to Completed in any direction, but
// once an order is Completed no transition - and no other mutation of the
// order - is permitted.
//
//	Pending <──> InProgress
//	    │            │
//	    └──> Completed <──┘   (terminal)
//
// Status is a value object that validates transitions and provides the wire
// string representations used by the HTTP layer and persisted seeds.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// InProgress indicates the order is being worked on.
	InProgress

	// Completed indicates the order is finished. Terminal: completed
	// orders reject every further mutation.
	Completed
)

// getStatusStrings returns a map of Status values to their wire strings.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// getValidStatusStrings returns only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// StatusFromString parses a wire string ("Pending", "InProgress",
// "Completed") into a Status. Returns an error for anything else.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsLocked reports whether the status forbids further mutation.
// Only Completed locks an order.
func (s Status) IsLocked() bool {
	return s == Completed
}

// CheckCanModify is the lifecycle guard consulted before every mutation of
// an order: field updates, soft delete, and item add/update/remove all pass
// through it. Returns a cause error when the status is locked, nil
// otherwise.
func (s Status) CheckCanModify() error {
	if s.IsLocked() {
		return fmt.Errorf("status %s forbids modification", s)
	}
	return nil
}

// TransitionTo validates a transition from the current status to target.
//
// Valid transitions:
//   - Pending <-> InProgress (both directions)
//   - Pending -> Completed, InProgress -> Completed
//
// Invalid transitions:
//   - Completed -> anything (including Completed itself)
//   - any transition to or from Unknown
//
// Returns the target status on success.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CheckCanModify(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}
