package globalvars

import (
	"errors"
	"fmt"
)

// ErrInvalidKey indicates an operation that requires a key was given the
// empty string.
var ErrInvalidKey = errors.New("invalid key")

// KeyError wraps a key validation failure with the operation that saw it.
type KeyError struct {
	// Op is the registry operation ("set").
	Op string
	// Key is the rejected key.
	Key string
	// Err is the underlying sentinel, ErrInvalidKey.
	Err error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *KeyError) Unwrap() error {
	return e.Err
}
