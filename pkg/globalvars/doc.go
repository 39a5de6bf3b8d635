/*
Package globalvars provides a shared, concurrency-safe store of named values
for graph components that need to pass data to each other without a wire
between them.

# Overview

A Registry maps string keys to values of any type. Setter-style components
write to it, Getter and Viewer components read from it, and a Cleaner
empties it. Many components evaluate concurrently, so every operation takes
a single exclusive lock for its whole duration and is atomic with respect
to all others.

# Basic Usage

	reg := globalvars.New()

	if err := reg.Set("radius", 4.5); err != nil {
	    log.Fatal(err) // only an empty key fails
	}

	r, ok := globalvars.TryGet[float64](reg, "radius") // 4.5, true
	_, ok = globalvars.TryGet[string](reg, "radius")   // "", false: wrong type
	_, ok = globalvars.TryGet[float64](reg, "missing") // 0, false

	snapshot := reg.GetAll() // independent copy
	reg.Remove("radius")     // true
	reg.Clear()

Writes are last-write-wins and replace both the value and its type. A type
mismatch on read is not an error; it reads the same as a missing key.

# Change Notifications

Consumers that must re-evaluate when the registry changes subscribe to it:

	sub := reg.Subscribe(func(c event.Change) error {
	    fmt.Printf("%s %s (revision %d)\n", c.Op, c.Key, c.Revision)
	    return nil
	}, event.OpSet, event.OpClear)
	defer sub.Unsubscribe()

The component package builds on this to expire dependent components in a
host document.

# Lifecycle

A Registry lives as long as its owner holds it. Construct one per session
and pass it to every component that should share it. Default returns a
lazily created process-wide instance for hosts that need one.

# Observability

	reg := globalvars.New(
	    globalvars.WithLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))),
	    globalvars.WithMetrics(true))

OpenTelemetry metrics: globalvars.registry.mutations,
globalvars.registry.entries, globalvars.registry.lookups. A Prometheus
collector is available via observability.NewRegistryCollector(reg).

# Subpackages

  - event: change notifications
  - component: Setter, Getter, Viewer, and Cleaner components
  - observability: logging, metrics, and tracing helpers
  - config: settings loading
*/
package globalvars
