package component

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
)

// Setter writes one value into the registry per evaluation.
type Setter struct {
	base
}

// SetterResult is what a Setter reports after a successful write.
type SetterResult struct {
	// GlobalVar renders the entry as 'key':value.
	GlobalVar string
	// GlobalVarType is the fully qualified type name of the value.
	GlobalVarType string
}

// NewSetter creates a Setter over reg. A nil reg uses globalvars.Default().
func NewSetter(reg *globalvars.Registry, opts ...Option) *Setter {
	return &Setter{base: newBase(KindSetter, reg, opts)}
}

// Solve stores value under key. An empty key fails with ErrEmptyKey and a
// nil value with ErrNoValue; neither touches the registry.
func (s *Setter) Solve(ctx context.Context, key string, value any) (SetterResult, error) {
	var res SetterResult
	err := s.run(ctx, func(ctx context.Context) error {
		if key == "" {
			return ErrEmptyKey
		}
		if value == nil {
			return ErrNoValue
		}
		if err := s.reg.Set(key, value); err != nil {
			return err
		}

		res = SetterResult{
			GlobalVar:     fmt.Sprintf("'%s':%v", key, value),
			GlobalVarType: fullTypeName(value, s.opts.nullTypeName),
		}
		s.opts.spans.AddSpanEvent(ctx, "globalvars.set", attribute.String("key", key))
		return nil
	})
	return res, err
}
