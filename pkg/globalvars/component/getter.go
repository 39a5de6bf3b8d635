package component

import (
	"context"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
)

// Getter reads one value from the registry per evaluation.
type Getter struct {
	base
}

// GetterResult is what a Getter reports. When Found is false, Value holds
// the missing-key message and ValueType the null type name.
type GetterResult struct {
	Value     any
	ValueType string
	Found     bool
}

// NewGetter creates a Getter over reg. A nil reg uses globalvars.Default().
func NewGetter(reg *globalvars.Registry, opts ...Option) *Getter {
	return &Getter{base: newBase(KindGetter, reg, opts)}
}

// Solve looks up key. A missing key, or one holding nil, is not an error.
func (g *Getter) Solve(ctx context.Context, key string) (GetterResult, error) {
	var res GetterResult
	err := g.run(ctx, func(context.Context) error {
		if key == "" {
			return ErrEmptyKey
		}

		v, ok := globalvars.TryGet[any](g.reg, key)
		if !ok {
			res = GetterResult{Value: g.opts.missingMessage, ValueType: g.opts.nullTypeName}
			return nil
		}
		res = GetterResult{Value: v, ValueType: typeName(v, g.opts.nullTypeName), Found: true}
		return nil
	})
	return res, err
}
