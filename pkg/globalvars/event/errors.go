package event

import (
	"errors"
	"fmt"
)

// ErrBusClosed indicates Publish or Subscribe was called after Close.
var ErrBusClosed = errors.New("event bus is closed")

// HandlerError wraps a failure raised by a subscriber.
type HandlerError struct {
	// SubscriptionID identifies the failing subscriber.
	SubscriptionID string
	// Change is the notification being delivered.
	Change Change
	// Err is the handler's error, or the recovered panic value.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("subscriber %s on %s: %v", e.SubscriptionID, e.Change, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking handler.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}
