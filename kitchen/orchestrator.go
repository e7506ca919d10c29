package kitchen

import (
	"fmt"

	"morphood/kitchen/geom"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/pool"
	"morphood/kitchen/recipe"

	"go.uber.org/zap"
)

// Orchestrator is the façade gameplay code uses to manage food items. It
// owns the item pool and the active-item set, and delegates rule questions
// to the registry and the recipe database.
type Orchestrator struct {
	cfg      Config
	registry *ingredient.Registry
	recipes  *recipe.Database
	pool     *pool.Pool
	active   map[*pool.Item]struct{}
	holder   Holder
	logger   *zap.Logger
}

// New creates an orchestrator and its backing pool.
func New(cfg Config, registry *ingredient.Registry, recipes *recipe.Database, logger *zap.Logger) (*Orchestrator, error) {
	if registry == nil {
		return nil, fmt.Errorf("nil ingredient registry")
	}
	if recipes == nil {
		return nil, fmt.Errorf("nil recipe database")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p, err := pool.New(cfg.PoolConfig(), logger)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		cfg:      cfg,
		registry: registry,
		recipes:  recipes,
		pool:     p,
		active:   make(map[*pool.Item]struct{}),
		logger:   logger,
	}, nil
}

// SetHolder attaches the player-carry collaborator. Optional; without it
// held items are released as-is.
func (o *Orchestrator) SetHolder(h Holder) {
	o.holder = h
}

// SpawnItem acquires a pooled item, assigns it the given identity and places
// it at position (lifted by the configured height offset) with zero
// rotation. Returns nil for an unknown identity or an exhausted pool; the
// caller may re-issue the spawn on a later tick.
func (o *Orchestrator) SpawnItem(id ingredient.ID, position geom.Vec3) *pool.Item {
	return o.SpawnItemRotated(id, position, geom.Zero)
}

// SpawnItemRotated is SpawnItem with an explicit rotation.
func (o *Orchestrator) SpawnItemRotated(id ingredient.ID, position, rotation geom.Vec3) *pool.Item {
	if id.IsZero() {
		o.logger.Warn("Refusing to spawn item without identity")
		return nil
	}
	def, ok := o.registry.Get(id)
	if !ok {
		o.logger.Warn("Refusing to spawn unknown identity", zap.String("id", string(id)))
		return nil
	}

	it := o.pool.Acquire()
	if it == nil {
		o.logger.Warn("Food pool exhausted", zap.String("id", string(id)))
		return nil
	}

	it.SetIdentity(def)
	it.Position = position.Add(geom.Vec3{Y: o.cfg.SpawnHeightOffset})
	it.Rotation = rotation
	o.active[it] = struct{}{}
	return it
}

// TryCombine resolves two active items against the recipe database. On a hit
// it spawns the result at position and releases both inputs; on a miss or
// invalid input it returns nil and leaves both inputs untouched. The
// operation is all-or-nothing: no partial state survives a failure.
func (o *Orchestrator) TryCombine(a, b *pool.Item, position geom.Vec3) *pool.Item {
	if a == nil || b == nil || a == b {
		o.logger.Warn("Refusing to combine invalid item pair")
		return nil
	}
	if !o.IsActive(a) || !o.IsActive(b) {
		o.logger.Warn("Refusing to combine inactive items")
		return nil
	}
	idA, idB := a.Identity(), b.Identity()
	if idA == nil || idB == nil {
		o.logger.Warn("Refusing to combine items without identities")
		return nil
	}

	resultID, ok := o.recipes.FindCombination(idA.ID, idB.ID)
	if !ok {
		// A miss is normal gameplay, not an error.
		return nil
	}

	// Spawn before releasing the inputs so a failed acquire leaves both
	// inputs untouched. At full capacity without growth this makes the
	// combine fail even though releasing the inputs would free two slots.
	result := o.SpawnItem(resultID, position)
	if result == nil {
		return nil
	}

	o.DestroyItem(a)
	o.DestroyItem(b)
	return result
}

// Transform applies a unary processing operation (chop, cook, burn) to an
// active item. On a hit it spawns the processed identity at position and
// releases the original; otherwise it returns nil and leaves the original
// untouched.
func (o *Orchestrator) Transform(it *pool.Item, op ingredient.Operation, position geom.Vec3) *pool.Item {
	if !o.IsActive(it) {
		o.logger.Warn("Refusing to transform inactive item")
		return nil
	}
	def := it.Identity()
	if def == nil {
		o.logger.Warn("Refusing to transform item without identity")
		return nil
	}

	resultID, ok := def.ProcessingResult(op)
	if !ok {
		return nil
	}

	result := o.SpawnItem(resultID, position)
	if result == nil {
		return nil
	}

	o.DestroyItem(it)
	return result
}

// DestroyItem removes an item from play and returns it to the pool. If a
// player is carrying the item it is force-dropped first. Destroying nil or
// an item that is not active is logged and ignored.
func (o *Orchestrator) DestroyItem(it *pool.Item) {
	if it == nil {
		o.logger.Warn("Ignoring destroy of nil item")
		return
	}
	if _, ok := o.active[it]; !ok {
		o.logger.Warn("Ignoring destroy of unregistered item", zap.Uint64("serial", it.Serial()))
		return
	}

	if o.holder != nil && o.holder.IsHeld(it) {
		o.holder.ForceDrop(it)
	}

	delete(o.active, it)
	o.pool.Release(it)
}

// IsActive reports whether the item is currently registered as in play.
func (o *Orchestrator) IsActive(it *pool.Item) bool {
	_, ok := o.active[it]
	return ok
}

// ActiveCount returns the number of items currently in play.
func (o *Orchestrator) ActiveCount() int {
	return len(o.active)
}

// PoolStats returns the backing pool's occupancy snapshot.
func (o *Orchestrator) PoolStats() pool.Stats {
	return o.pool.Stats()
}

// Reset tears the session down: every active item is unregistered and the
// pool is cleared. The orchestrator is reusable afterwards only by building
// a new one; this exists for clean shutdown.
func (o *Orchestrator) Reset() {
	o.active = make(map[*pool.Item]struct{})
	o.pool.Clear()
}
