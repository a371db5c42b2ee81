package task

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a task.
//
// State transitions:
//
//	NEW ──> IN_PROGRESS ──> COMPLETED
//	 │           │
//	 └───────────┴────────> CANCELLED
//
// COMPLETED and CANCELLED have no outgoing transitions. Moving a task to
// the status it already has is accepted and changes nothing.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// New is the status of every task when it is created.
	New

	// InProgress means a crew has started the work.
	InProgress

	// Completed is terminal: the work was done.
	Completed

	// Cancelled is terminal: the work will not be done.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getAllowedTransitions lists the statuses reachable in one step.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown states have no exits
	return map[Status][]Status{
		New:        {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
	}
}

// ParseStatus converts an external status name such as "in_progress" into
// a Status. Names are matched case-insensitively.
//
// Returns a ValueIsInvalidError for any name outside the four lifecycle
// states, including "UNKNOWN".
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid task status", s))
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether next is reachable from s, counting the
// same-state update as reachable.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the status after moving from s to next.
//
// Returns:
//   - (next, nil) when the transition table allows it or next equals s
//   - (s, ValueIsInvalidError) when either status is not a lifecycle state
//   - (s, TransitionIsNotAllowedError) otherwise, e.g. COMPLETED -> NEW
//
// Example:
//
//	next, err := task.New.TransitionTo(task.InProgress) // IN_PROGRESS, nil
//	_, err = task.Completed.TransitionTo(task.New)      // err: transition is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(next) {
		return s, errs.NewTransitionIsNotAllowedError("task status", s.String(), next.String())
	}
	return next, nil
}
