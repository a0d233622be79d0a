package apperr

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError covers malformed input: bad date ranges, references to
// guests/rooms that do not exist, non-positive quantities, negative prices.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError means the requested room is already taken for an overlapping
// date range. The caller may retry with different dates.
type ConflictError struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is not available from %s to %s",
		e.RoomID.String(),
		e.CheckIn.Format("2006-01-02"),
		e.CheckOut.Format("2006-01-02"),
	)
}

// InvalidStateError means a lifecycle transition was attempted from a state
// that does not permit it. The record is left unchanged.
type InvalidStateError struct {
	Op     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: current status is %s", e.Op, e.Status)
}

// NotFoundError means a referenced record is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// DuplicateError means a record that must be unique already exists,
// e.g. a second bill for an already-billed reservation.
type DuplicateError struct {
	Resource string
	ID       string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Resource, e.ID)
}

// StoreUnavailableError is returned after bounded retries of transient
// store failures (serialization conflicts, deadlocks) are exhausted.
type StoreUnavailableError struct {
	Attempts int
	Err      error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
