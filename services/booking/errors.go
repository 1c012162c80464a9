package booking

import "fmt"

// PermissionError signals the caller lacks the role or ownership required
// for the operation.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// NotFoundError signals the id does not resolve under the caller's scope.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// SchedulingConflictError signals the requested slot overlaps a calendar
// block or an existing booking.
type SchedulingConflictError struct {
	LawyerID string
	Date     string
	Time     string
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("lawyer %s is not available on %s at %s", e.LawyerID, e.Date, e.Time)
}

// MalformedTimeError signals a date/time that matches neither accepted format.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("unparseable date/time %q", e.Value)
}

// InvalidTransitionError signals a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}
