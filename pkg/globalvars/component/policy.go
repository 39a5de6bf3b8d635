package component

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/randalmurphal/globalvars/pkg/globalvars"
	"github.com/randalmurphal/globalvars/pkg/globalvars/config"
	"github.com/randalmurphal/globalvars/pkg/globalvars/event"
	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// Policy names, per change kind, the collaborator kinds to expire.
type Policy struct {
	OnSet    []Kind
	OnRemove []Kind
	OnClear  []Kind
}

// DefaultPolicy expires Getters and Viewers on every change.
func DefaultPolicy() Policy {
	return Policy{
		OnSet:    []Kind{KindGetter, KindViewer},
		OnRemove: []Kind{KindGetter, KindViewer},
		OnClear:  []Kind{KindGetter, KindViewer},
	}
}

// For returns the kinds to expire for op.
func (p Policy) For(op event.Op) []Kind {
	switch op {
	case event.OpSet:
		return p.OnSet
	case event.OpRemove:
		return p.OnRemove
	case event.OpClear:
		return p.OnClear
	}
	return nil
}

// PolicyFromSettings parses the kind names in s.
func PolicyFromSettings(s config.ExpireSettings) (Policy, error) {
	var errs []error
	parse := func(field string, names []string) []Kind {
		kinds := make([]Kind, 0, len(names))
		for _, name := range names {
			k, err := ParseKind(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("expire.%s: %w", field, err))
				continue
			}
			kinds = append(kinds, k)
		}
		return kinds
	}

	p := Policy{
		OnSet:    parse("on_set", s.OnSet),
		OnRemove: parse("on_remove", s.OnRemove),
		OnClear:  parse("on_clear", s.OnClear),
	}
	if err := errors.Join(errs...); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// Binding connects a registry to a Document until closed.
type Binding struct {
	sub    event.Subscription
	closed atomic.Bool
}

// Bind subscribes to reg and expires the kinds policy names for each
// change. ctx is passed to every Expire call and to the recompute
// callbacks behind it. Logger and metrics options apply; the rest are
// ignored.
func Bind(ctx context.Context, reg *globalvars.Registry, doc Document, policy Policy, opts ...Option) (*Binding, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if reg == nil {
		reg = globalvars.Default()
	}
	o := buildOptions(opts)
	logger := o.logger.With("component", "binding")
	b := &Binding{}

	sub := reg.Subscribe(func(c event.Change) error {
		if b.closed.Load() {
			return nil
		}
		kinds := policy.For(c.Op)
		if len(kinds) == 0 {
			return nil
		}

		n := doc.Expire(ctx, kinds...)

		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		observability.LogExpire(logger, c.String(), names, n)
		o.metrics.RecordExpire(ctx, c.Op.String(), n)
		return nil
	})
	if sub == nil {
		return nil, ErrSubscribe
	}
	b.sub = sub
	return b, nil
}

// Close stops expiring. Changes delivered after Close returns are ignored,
// even those already being published. An Expire call that started before
// Close may still run to completion. Safe to call more than once.
func (b *Binding) Close() {
	b.closed.Store(true)
	b.sub.Unsubscribe()
}

// Pause suspends expiry without dropping the subscription.
func (b *Binding) Pause() {
	b.sub.Pause()
}

// Resume undoes Pause.
func (b *Binding) Resume() {
	b.sub.Resume()
}
