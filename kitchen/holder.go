package kitchen

import "morphood/kitchen/pool"

// Holder abstracts the player-carry system. The orchestrator consults it
// before destroying an item so no dangling "held" reference survives a
// release back into the pool.
type Holder interface {
	// IsHeld reports whether a player is currently carrying the item.
	IsHeld(it *pool.Item) bool
	// ForceDrop makes the carrier let go of the item immediately.
	ForceDrop(it *pool.Item)
}
