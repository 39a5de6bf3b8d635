package component

import (
	"context"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
)

// Cleaner empties the registry when triggered.
type Cleaner struct {
	base
}

// NewCleaner creates a Cleaner over reg. A nil reg uses globalvars.Default().
func NewCleaner(reg *globalvars.Registry, opts ...Option) *Cleaner {
	return &Cleaner{base: newBase(KindCleaner, reg, opts)}
}

// Solve clears the registry if clean is true and reports whether it did.
func (c *Cleaner) Solve(ctx context.Context, clean bool) (bool, error) {
	var cleared bool
	err := c.run(ctx, func(context.Context) error {
		if !clean {
			return nil
		}
		c.reg.Clear()
		cleared = true
		return nil
	})
	return cleared, err
}
