package globalvars

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/sasha-s/go-deadlock"

	"github.com/randalmurphal/globalvars/pkg/globalvars/event"
	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// Registry is a concurrency-safe mapping from string keys to values of any
// type. A single lock covers every operation, so each call is atomic with
// respect to every other call.
type Registry struct {
	mu       deadlock.Mutex
	entries  map[string]any
	revision uint64

	bus               *event.Bus
	busConfig         event.BusConfig
	onSubscriberError func(*event.HandlerError)

	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// New creates an empty registry.
//
// Example:
//
//	reg := globalvars.New(globalvars.WithLogger(logger))
//	_ = reg.Set("width", 12.5)
//	w, ok := globalvars.TryGet[float64](reg, "width")
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]any),
		logger:  observability.DiscardLogger(),
		metrics: observability.NoopMetrics{},
	}

	for _, opt := range opts {
		opt(r)
	}

	cfg := r.busConfig
	cfg.OnError = r.handleSubscriberError
	r.bus = event.NewBus(cfg)

	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return New() })

// Default returns the process-wide registry, created empty on first use.
// Prefer constructing a Registry with New and passing it to the
// components that share it.
func Default() *Registry {
	return defaultRegistry()
}

// Set inserts or overwrites the value for key. Any value is accepted,
// including nil; the previous value and its type are replaced entirely.
// An empty key returns a *KeyError wrapping ErrInvalidKey and leaves the
// registry unchanged.
func (r *Registry) Set(key string, value any) error {
	if key == "" {
		observability.LogInvalidKey(r.logger, "set")
		return &KeyError{Op: "set", Key: key, Err: ErrInvalidKey}
	}

	r.mu.Lock()
	r.entries[key] = value
	r.revision++
	rev := r.revision
	// Recorded under the lock so the entries gauge ends on the final count.
	r.metrics.RecordMutation(context.Background(), event.OpSet.String(), len(r.entries))
	r.mu.Unlock()

	if r.logger.Enabled(context.Background(), slog.LevelDebug) {
		observability.LogSet(r.logger, key, fmt.Sprintf("%T", value), rev)
	}
	r.publish(event.OpSet, key, rev)
	return nil
}

// TryGet returns the value stored under key if it is present and
// assignable to T. A missing key, an empty key, and a value of another
// type all return the zero T and false.
//
// For interface types T the stored value only has to implement T. A
// stored nil never matches.
func TryGet[T any](r *Registry, key string) (T, bool) {
	var zero T

	raw, ok := r.Lookup(key)
	if !ok {
		return zero, false
	}

	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Lookup returns the raw value stored under key and whether the key is
// present. Unlike TryGet it reports a stored nil as present.
func (r *Registry) Lookup(key string) (any, bool) {
	if key == "" {
		r.metrics.RecordLookup(context.Background(), false)
		return nil, false
	}

	r.mu.Lock()
	v, ok := r.entries[key]
	r.mu.Unlock()

	r.metrics.RecordLookup(context.Background(), ok)
	return v, ok
}

// GetAll returns a copy of every entry. The copy is independent of the
// registry: later writes to either side are not visible to the other.
// Values themselves are not deep-copied.
func (r *Registry) GetAll() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.entries)
}

// Clear removes every entry. Calling it on an empty registry is allowed and
// still counts as a mutation.
func (r *Registry) Clear() {
	r.mu.Lock()
	dropped := len(r.entries)
	r.entries = make(map[string]any)
	r.revision++
	rev := r.revision
	r.metrics.RecordMutation(context.Background(), event.OpClear.String(), 0)
	r.mu.Unlock()

	observability.LogClear(r.logger, dropped, rev)
	r.publish(event.OpClear, "", rev)
}

// Remove deletes the entry for key and reports whether one existed.
// An empty key is a no-op returning false.
func (r *Registry) Remove(key string) bool {
	if key == "" {
		return false
	}

	r.mu.Lock()
	if _, ok := r.entries[key]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.entries, key)
	r.revision++
	rev := r.revision
	r.metrics.RecordMutation(context.Background(), event.OpRemove.String(), len(r.entries))
	r.mu.Unlock()

	observability.LogRemove(r.logger, key, rev)
	r.publish(event.OpRemove, key, rev)
	return true
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Keys returns all keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// Revision returns the number of mutations applied so far. It only grows,
// so a consumer can compare revisions to detect that something changed
// since its last read.
func (r *Registry) Revision() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revision
}

// Subscribe registers handler for changes with the given ops, or for every
// change when no ops are given. Handlers run synchronously on the goroutine
// that performed the mutation, after the registry lock has been released.
// Concurrent mutations may deliver out of order; Change.Revision gives the
// order in which they were applied.
//
// Returns nil when the subscriber limit is reached.
func (r *Registry) Subscribe(handler event.Handler, ops ...event.Op) event.Subscription {
	return r.bus.Subscribe(ops, handler)
}

func (r *Registry) publish(op event.Op, key string, rev uint64) {
	if r.bus.Len() == 0 {
		return
	}
	// Publish only fails on a closed bus, which the registry never closes.
	_ = r.bus.Publish(event.NewChange(op, key, rev))
}

func (r *Registry) handleSubscriberError(err *event.HandlerError) {
	observability.LogSubscriberError(r.logger, err.SubscriptionID, err.Change.String(), err.Err)
	if r.onSubscriberError != nil {
		r.onSubscriberError(err)
	}
}
