package pool

import (
	"fmt"

	"go.uber.org/zap"
)

// Config holds the capacity policy of a pool.
type Config struct {
	// InitialSize is the number of items created up front.
	InitialSize int
	// MaxCapacity is the hard ceiling on items ever created.
	MaxCapacity int
	// AllowGrowth permits creating items beyond InitialSize, up to
	// MaxCapacity, when the available queue runs dry.
	AllowGrowth bool
}

// Validate checks the capacity invariants.
func (c Config) Validate() error {
	if c.InitialSize < 0 {
		return fmt.Errorf("initial size must not be negative, got %d", c.InitialSize)
	}
	if c.MaxCapacity < 1 {
		return fmt.Errorf("max capacity must be at least 1, got %d", c.MaxCapacity)
	}
	if c.MaxCapacity < c.InitialSize {
		return fmt.Errorf("max capacity %d is below initial size %d", c.MaxCapacity, c.InitialSize)
	}
	return nil
}

// Stats is a point-in-time snapshot of pool occupancy.
type Stats struct {
	Available int `json:"available"`
	Active    int `json:"active"`
	Created   int `json:"created"`
	Capacity  int `json:"capacity"`
}

// Pool is a bounded, optionally growable pool of reusable food items.
// All methods are synchronous and tick-driven; the pool performs no locking.
type Pool struct {
	cfg        Config
	available  []*Item
	inQueue    map[*Item]struct{}
	created    map[*Item]struct{}
	nextSerial uint64
	logger     *zap.Logger
}

// New creates a pool and pre-creates cfg.InitialSize dormant items.
func New(cfg Config, logger *zap.Logger) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pool config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pool{
		cfg:     cfg,
		inQueue: make(map[*Item]struct{}, cfg.MaxCapacity),
		created: make(map[*Item]struct{}, cfg.MaxCapacity),
		logger:  logger,
	}
	for i := 0; i < cfg.InitialSize; i++ {
		p.enqueue(p.newItem())
	}
	return p, nil
}

// Acquire hands out one item, activated and ready for use. It prefers the
// available queue, grows the pool when policy allows, and returns nil when
// the pool is exhausted. Callers must treat nil as resource exhaustion, not
// retry within the same tick.
func (p *Pool) Acquire() *Item {
	if len(p.available) > 0 {
		it := p.available[0]
		p.available = p.available[1:]
		delete(p.inQueue, it)
		it.activate()
		return it
	}

	if p.cfg.AllowGrowth && len(p.created) < p.cfg.MaxCapacity {
		it := p.newItem()
		it.activate()
		return it
	}

	return nil
}

// Release returns an item to the available queue after fully resetting it.
// Releasing nil, an item from another pool, or an item already in the queue
// is logged and ignored.
func (p *Pool) Release(it *Item) {
	if it == nil {
		p.logger.Warn("Ignoring release of nil item")
		return
	}
	if !p.Owns(it) {
		p.logger.Warn("Ignoring release of foreign item", zap.Uint64("serial", it.serial))
		return
	}
	if _, queued := p.inQueue[it]; queued {
		p.logger.Warn("Ignoring double release", zap.Uint64("serial", it.serial))
		return
	}

	it.reset()
	p.enqueue(it)
}

// Owns reports whether the item was created by, and still belongs to, this
// pool.
func (p *Pool) Owns(it *Item) bool {
	if it == nil {
		return false
	}
	_, ok := p.created[it]
	return ok && it.owner == p
}

// Clear destroys every item the pool ever created and resets all counters.
// Only used on full session teardown.
func (p *Pool) Clear() {
	for it := range p.created {
		it.reset()
		it.owner = nil
	}
	p.available = nil
	p.inQueue = make(map[*Item]struct{}, p.cfg.MaxCapacity)
	p.created = make(map[*Item]struct{}, p.cfg.MaxCapacity)
	p.nextSerial = 0
}

// Stats returns the current occupancy snapshot. The conservation invariant
// Available+Active == Created holds at all times.
func (p *Pool) Stats() Stats {
	return Stats{
		Available: len(p.available),
		Active:    len(p.created) - len(p.available),
		Created:   len(p.created),
		Capacity:  p.cfg.MaxCapacity,
	}
}

func (p *Pool) newItem() *Item {
	p.nextSerial++
	it := &Item{serial: p.nextSerial, owner: p}
	p.created[it] = struct{}{}
	return it
}

func (p *Pool) enqueue(it *Item) {
	p.available = append(p.available, it)
	p.inQueue[it] = struct{}{}
}
