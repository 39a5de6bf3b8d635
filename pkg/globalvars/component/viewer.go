package component

import (
	"context"
	"maps"
	"slices"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
)

// Viewer lists every entry in the registry.
type Viewer struct {
	base
}

// ViewerResult holds parallel lists ordered by key: Keys[i] maps to
// Values[i], whose type is Types[i]. Schemas is only set when the Viewer
// was created WithSchemas(true).
type ViewerResult struct {
	Keys    []string
	Values  []any
	Types   []string
	Schemas []map[string]any
}

// NewViewer creates a Viewer over reg. A nil reg uses globalvars.Default().
func NewViewer(reg *globalvars.Registry, opts ...Option) *Viewer {
	return &Viewer{base: newBase(KindViewer, reg, opts)}
}

// Solve snapshots the registry.
func (v *Viewer) Solve(ctx context.Context) (ViewerResult, error) {
	var res ViewerResult
	err := v.run(ctx, func(context.Context) error {
		snapshot := v.reg.GetAll()
		keys := slices.Sorted(maps.Keys(snapshot))

		res = ViewerResult{
			Keys:   keys,
			Values: make([]any, len(keys)),
			Types:  make([]string, len(keys)),
		}
		if v.opts.includeSchemas {
			res.Schemas = make([]map[string]any, len(keys))
		}

		for i, k := range keys {
			val := snapshot[k]
			res.Values[i] = val
			res.Types[i] = typeName(val, v.opts.nullTypeName)
			if res.Schemas != nil {
				res.Schemas[i] = TypeSchema(val)
			}
		}
		return nil
	})
	return res, err
}
