package subtrack

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by errors returned when an update or delete target is absent.
	ErrNotFound = errors.New("subscription not found")
	// ErrDuplicate is matched by errors returned when a subscription name is already taken by the owner.
	ErrDuplicate = errors.New("subscription already exists")
	// ErrInvalidRecord reports a record with a missing owner or name.
	ErrInvalidRecord = errors.New("invalid subscription")
	// ErrInvalidPaymentDay reports a payment day that is not a day of month.
	ErrInvalidPaymentDay = errors.New("invalid payment day")
)

// MalformedRowError reports a row of the subscriptions file that does not have
// exactly the canonical number of fields.
type MalformedRowError struct {
	File   string
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("format error %s:%d: want %d fields got %d", e.File, e.Line, canonicalFields, e.Fields)
}

// NotFoundError reports a missing (owner, name) subscription.
type NotFoundError struct {
	Owner, Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("subscription %q for user %q not found", e.Name, e.Owner)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateRecordError reports an (owner, name) subscription that already exists.
type DuplicateRecordError struct {
	Owner, Name string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("subscription %q for user %q already exists", e.Name, e.Owner)
}

func (e *DuplicateRecordError) Is(target error) bool { return target == ErrDuplicate }
