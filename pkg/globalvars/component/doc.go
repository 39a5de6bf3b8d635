// Package component provides the four node collaborators that share a
// globalvars.Registry: Setter, Getter, Viewer, and Cleaner.
//
// Each collaborator is evaluated with Solve. A Setter writes a value, a
// Getter reads one back, a Viewer lists every entry, and a Cleaner empties
// the registry on request.
//
// # Expiry
//
// A host that keeps component instances alive implements Document. Bind
// subscribes to a registry and expires the component kinds named by a
// Policy whenever the registry changes, so Getters and Viewers re-solve
// after a Setter or Cleaner runs. Canvas is an in-memory Document.
//
// Basic usage:
//
//	reg := globalvars.New()
//	canvas := component.NewCanvas(logger)
//	binding, err := component.Bind(ctx, reg, canvas, component.DefaultPolicy())
//	if err != nil {
//	    return err
//	}
//	defer binding.Close()
//
//	getter := component.NewGetter(reg)
//	_ = canvas.Place(getter, func(ctx context.Context) error {
//	    res, err := getter.Solve(ctx, "width")
//	    ...
//	})
//
//	_, err = component.NewSetter(reg).Solve(ctx, "width", 12.5) // re-solves getter
package component
