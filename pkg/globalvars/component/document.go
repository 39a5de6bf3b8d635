package component

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sasha-s/go-deadlock"

	"github.com/randalmurphal/globalvars/pkg/globalvars/observability"
)

// Document is the host that owns live collaborator instances.
type Document interface {
	// Expire marks every instance of the given kinds for re-evaluation and
	// returns how many were expired.
	Expire(ctx context.Context, kinds ...Kind) int
}

// Instance is anything placed on a Canvas. Setter, Getter, Viewer, and
// Cleaner all satisfy it.
type Instance interface {
	ID() string
	Kind() Kind
}

// RecomputeFunc re-evaluates an instance after it was expired.
type RecomputeFunc func(ctx context.Context) error

type placement struct {
	inst      Instance
	recompute RecomputeFunc
	expired   uint64
}

// DefaultMaxRounds bounds how many rounds one Canvas.Expire call runs.
const DefaultMaxRounds = 8

// Canvas is an in-memory Document. Instances are expired in the order
// they were placed, and their recompute callbacks run synchronously
// without the canvas lock held.
//
// A callback may solve collaborators that change the registry again. An
// Expire that arrives while a pass is running, from a callback or from
// another goroutine, is queued and drained by the running pass in a
// further round. Each round recomputes an instance at most once, and a
// pass stops after its round limit even if a registry cycle keeps
// requesting more.
type Canvas struct {
	mu        deadlock.Mutex
	placed    []*placement
	logger    *slog.Logger
	maxRounds int

	expiring bool
	pending  []Kind
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithMaxRounds sets the round limit of one expiry pass.
// Default: DefaultMaxRounds
func WithMaxRounds(n int) CanvasOption {
	return func(c *Canvas) {
		if n > 0 {
			c.maxRounds = n
		}
	}
}

// NewCanvas creates an empty canvas. A nil logger discards output.
func NewCanvas(logger *slog.Logger, opts ...CanvasOption) *Canvas {
	if logger == nil {
		logger = observability.DiscardLogger()
	}
	c := &Canvas{logger: logger, maxRounds: DefaultMaxRounds}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Document = (*Canvas)(nil)

// Place adds inst to the canvas. recompute may be nil when the instance
// only needs to be counted.
func (c *Canvas) Place(inst Instance, recompute RecomputeFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(inst.ID()) >= 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyPlaced, inst.ID())
	}
	c.placed = append(c.placed, &placement{inst: inst, recompute: recompute})
	return nil
}

// Remove takes the instance with id off the canvas.
func (c *Canvas) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.placed = slices.Delete(c.placed, i, i+1)
	return true
}

// Len returns the number of placed instances.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.placed)
}

// Expirations returns how many times the instance with id was expired.
func (c *Canvas) Expirations(id string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.placed[i].expired
	}
	return 0
}

// Expire implements Document and returns how many instances the kinds
// matched. Recompute errors are logged and do not stop the remaining
// instances from re-evaluating. Called during a running pass, Expire
// queues kinds for the next round and returns without recomputing.
func (c *Canvas) Expire(ctx context.Context, kinds ...Kind) int {
	if len(kinds) == 0 {
		return 0
	}

	c.mu.Lock()
	if c.expiring {
		n := len(c.matchLocked(kinds))
		for _, k := range kinds {
			if !slices.Contains(c.pending, k) {
				c.pending = append(c.pending, k)
			}
		}
		c.mu.Unlock()
		return n
	}
	c.expiring = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.expiring = false
		c.pending = nil
		c.mu.Unlock()
	}()

	var expired int
	round := kinds
	for i := 1; ; i++ {
		c.mu.Lock()
		due := c.matchLocked(round)
		for _, p := range due {
			p.expired++
		}
		c.mu.Unlock()

		if i == 1 {
			expired = len(due)
		}
		c.recompute(ctx, due)

		c.mu.Lock()
		round, c.pending = c.pending, nil
		c.mu.Unlock()

		if len(round) == 0 || ctx.Err() != nil {
			return expired
		}
		if i >= c.maxRounds {
			c.logger.Warn("expiry did not settle",
				slog.Int("rounds", i),
				slog.Any("dropped_kinds", round),
			)
			return expired
		}
	}
}

func (c *Canvas) recompute(ctx context.Context, due []*placement) {
	for _, p := range due {
		if p.recompute == nil {
			continue
		}
		if err := p.recompute(ctx); err != nil {
			c.logger.Warn("recompute failed",
				slog.String("component", p.inst.Kind().String()),
				slog.String("component_id", p.inst.ID()),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (c *Canvas) matchLocked(kinds []Kind) []*placement {
	var out []*placement
	for _, p := range c.placed {
		if slices.Contains(kinds, p.inst.Kind()) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Canvas) indexLocked(id string) int {
	return slices.IndexFunc(c.placed, func(p *placement) bool {
		return p.inst.ID() == id
	})
}
