package component

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// base holds what every collaborator shares.
type base struct {
	kind Kind
	reg  *globalvars.Registry
	opts options

	logger *slog.Logger
}

func newBase(kind Kind, reg *globalvars.Registry, opts []Option) base {
	if reg == nil {
		reg = globalvars.Default()
	}
	o := buildOptions(opts)
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return base{
		kind:   kind,
		reg:    reg,
		opts:   o,
		logger: observability.EnrichLogger(o.logger, string(kind), o.id),
	}
}

// ID returns the instance ID.
func (b *base) ID() string {
	return b.opts.id
}

// Kind returns the collaborator kind.
func (b *base) Kind() Kind {
	return b.kind
}

// Descriptor returns the host-facing identity of the collaborator.
func (b *base) Descriptor() Descriptor {
	d, _ := DescriptorFor(b.kind)
	return d
}

// Registry returns the registry the collaborator reads and writes.
func (b *base) Registry() *globalvars.Registry {
	return b.reg
}

// run wraps one evaluation with a span, metrics, and logs. A canceled
// context short-circuits before fn touches the registry.
func (b *base) run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, span := b.opts.spans.StartSolveSpan(ctx, string(b.kind), b.opts.id)
	start := time.Now()
	elapsed := observability.TimedOperation()
	observability.LogSolveStart(b.logger)

	err := ctx.Err()
	if err == nil {
		err = fn(ctx)
	}
	if err != nil {
		err = &SolveError{Kind: b.kind, ID: b.opts.id, Err: err}
	}

	b.opts.metrics.RecordSolve(ctx, string(b.kind), time.Since(start), err)
	if err != nil {
		observability.LogSolveError(b.logger, err, elapsed())
	} else {
		observability.LogSolveComplete(b.logger, elapsed())
	}
	b.opts.spans.EndSpanWithError(span, err)
	return err
}
