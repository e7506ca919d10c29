package pool

import (
	"morphood/kitchen/geom"
	"morphood/kitchen/ingredient"
)

// Item is one reusable food-item instance. It is created once by its pool
// and cycles between dormant (in the available queue) and active (in
// gameplay) until the pool is torn down.
type Item struct {
	serial   uint64
	identity *ingredient.Identity
	active   bool
	owner    *Pool

	// Position, Rotation and Velocity mirror the physical simulation state
	// of the instance. All three are zeroed on release.
	Position geom.Vec3
	Rotation geom.Vec3
	Velocity geom.Vec3

	// Held marks the item as carried by a player.
	Held bool
	// Highlighted marks the item as the current interaction target.
	Highlighted bool
	// CollisionEnabled is false while the item sits in the pool.
	CollisionEnabled bool
}

// Serial returns the item's creation serial, unique within its pool.
func (it *Item) Serial() uint64 {
	return it.serial
}

// Identity returns the ingredient identity currently assigned to the item,
// or nil while the item is dormant.
func (it *Item) Identity() *ingredient.Identity {
	if it == nil {
		return nil
	}
	return it.identity
}

// SetIdentity assigns the item's authoritative ingredient identity.
func (it *Item) SetIdentity(def *ingredient.Identity) {
	it.identity = def
}

// IsActive reports whether the item is currently in gameplay use.
func (it *Item) IsActive() bool {
	return it != nil && it.active
}

// reset restores the item to its never-used state. Runs atomically with the
// active→dormant transition so no frame observes a half-reset instance.
func (it *Item) reset() {
	it.active = false
	it.identity = nil
	it.Position = geom.Zero
	it.Rotation = geom.Zero
	it.Velocity = geom.Zero
	it.Held = false
	it.Highlighted = false
	it.CollisionEnabled = false
}

// activate marks the item as in use and re-enables its physics.
func (it *Item) activate() {
	it.active = true
	it.CollisionEnabled = true
}
