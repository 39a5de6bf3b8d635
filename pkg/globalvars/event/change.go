package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Op identifies the kind of mutation a Change describes.
type Op int

const (
	// OpSet is published after a key was inserted or overwritten.
	OpSet Op = iota + 1

	// OpRemove is published after an existing key was deleted.
	OpRemove

	// OpClear is published after the registry was emptied.
	OpClear
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpRemove:
		return "remove"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// ParseOp converts an op name back to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "set":
		return OpSet, nil
	case "remove":
		return OpRemove, nil
	case "clear":
		return OpClear, nil
	}
	return 0, fmt.Errorf("unknown op %q", s)
}

// Change describes one registry mutation.
type Change struct {
	// ID uniquely identifies this notification.
	ID string
	// Op is the mutation kind.
	Op Op
	// Key is the affected key. Empty for OpClear.
	Key string
	// Revision is the registry revision after the mutation.
	Revision uint64
	// Time is when the mutation was applied.
	Time time.Time
}

// NewChange builds a Change with a fresh ID and the current time.
func NewChange(op Op, key string, revision uint64) Change {
	return Change{
		ID:       uuid.New().String(),
		Op:       op,
		Key:      key,
		Revision: revision,
		Time:     time.Now(),
	}
}

// String renders the change for logs and test failures.
func (c Change) String() string {
	if c.Key == "" {
		return fmt.Sprintf("%s@%d", c.Op, c.Revision)
	}
	return fmt.Sprintf("%s(%s)@%d", c.Op, c.Key, c.Revision)
}
