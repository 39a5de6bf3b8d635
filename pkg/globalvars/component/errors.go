package component

import (
	"errors"
	"fmt"
)

// Sentinel errors for collaborator evaluation.
var (
	// ErrEmptyKey indicates a Setter or Getter was given an empty key.
	ErrEmptyKey = errors.New("the key cannot be an empty string")

	// ErrNoValue indicates a Setter was given a nil value.
	ErrNoValue = errors.New("no value has been provided")

	// ErrUnknownKind indicates a kind name that is not a collaborator.
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrAlreadyPlaced indicates a component ID already on the canvas.
	ErrAlreadyPlaced = errors.New("component already placed")

	// ErrNilDocument indicates Bind was called without a document.
	ErrNilDocument = errors.New("document is nil")

	// ErrSubscribe indicates the registry refused a new subscription.
	ErrSubscribe = errors.New("registry subscription refused")
)

// SolveError wraps a failed evaluation with the component that reported it.
type SolveError struct {
	Kind Kind
	ID   string
	Err  error
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SolveError) Unwrap() error {
	return e.Err
}
