package event

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
)

// Handler receives a Change. A returned error is reported through
// BusConfig.OnError.
type Handler func(c Change) error

// Subscription represents an active subscription.
type Subscription interface {
	// ID returns the subscription identifier used in HandlerError.
	ID() string

	// Unsubscribe removes the subscription. Safe to call more than once.
	Unsubscribe()

	// Pause temporarily stops delivery.
	Pause()

	// Resume continues delivery after pause.
	Resume()

	// IsPaused returns true if the subscription is paused.
	IsPaused() bool
}

// BusConfig configures bus behavior.
type BusConfig struct {
	// MaxSubscribers limits total subscriptions.
	// Default: 0 (unlimited)
	MaxSubscribers int

	// OnError is called when a handler returns an error or panics.
	OnError func(err *HandlerError)
}

// Bus fans changes out to subscribers synchronously.
type Bus struct {
	config BusConfig

	mu   sync.RWMutex
	subs []*subscription

	nextID atomic.Int64
	closed atomic.Bool
}

// NewBus creates a new bus.
func NewBus(config BusConfig) *Bus {
	return &Bus{config: config}
}

type subscription struct {
	id      string
	ops     []Op // empty = all ops
	handler Handler
	paused  atomic.Bool
	bus     *Bus
}

// Publish delivers c to every matching, unpaused subscriber in
// subscription order. It returns ErrBusClosed after Close.
func (b *Bus) Publish(c Change) error {
	if b.closed.Load() {
		return ErrBusClosed
	}

	b.mu.RLock()
	matching := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.matches(c.Op) {
			matching = append(matching, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matching {
		if sub.paused.Load() {
			continue
		}
		if err := sub.deliver(c); err != nil && b.config.OnError != nil {
			b.config.OnError(&HandlerError{SubscriptionID: sub.id, Change: c, Err: err})
		}
	}
	return nil
}

// Subscribe registers handler for the given ops. An empty ops slice
// subscribes to everything. Returns nil if the bus is closed or the
// subscriber limit is reached.
func (b *Bus) Subscribe(ops []Op, handler Handler) Subscription {
	sub := b.subscribe(ops, handler)
	if sub == nil {
		return nil
	}
	return sub
}

// SubscribeAll subscribes to all ops.
func (b *Bus) SubscribeAll(handler Handler) Subscription {
	return b.Subscribe(nil, handler)
}

func (b *Bus) subscribe(ops []Op, handler Handler) *subscription {
	if handler == nil || b.closed.Load() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.config.MaxSubscribers > 0 && len(b.subs) >= b.config.MaxSubscribers {
		return nil
	}

	sub := &subscription{
		id:      strconv.FormatInt(b.nextID.Add(1), 10),
		ops:     slices.Clone(ops),
		handler: handler,
		bus:     b,
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops all subscriptions. Subsequent Publish calls fail.
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
	return nil
}

func (s *subscription) matches(op Op) bool {
	return len(s.ops) == 0 || slices.Contains(s.ops, op)
}

func (s *subscription) deliver(c Change) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return s.handler(c)
}

// ID returns the subscription identifier.
func (s *subscription) ID() string {
	return s.id
}

// Unsubscribe removes the subscription.
func (s *subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	s.bus.subs = slices.DeleteFunc(s.bus.subs, func(other *subscription) bool {
		return other == s
	})
}

// Pause temporarily stops delivery.
func (s *subscription) Pause() {
	s.paused.Store(true)
}

// Resume continues delivery after pause.
func (s *subscription) Resume() {
	s.paused.Store(false)
}

// IsPaused returns true if the subscription is paused.
func (s *subscription) IsPaused() bool {
	return s.paused.Load()
}
