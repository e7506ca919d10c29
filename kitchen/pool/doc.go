// Package pool implements the reusable food-item pool.
//
// Food items churn constantly during a round (spawn, chop, combine, serve),
// so instances are recycled instead of allocated per use. A Pool owns every
// Item it ever created; at any moment an item is either dormant in the
// available queue or active in gameplay, never both.
//
// # Capacity
//
// The pool pre-creates InitialSize items and, when AllowGrowth is set, grows
// on demand up to MaxCapacity. Beyond that Acquire returns nil: the design
// trades a possible gameplay stall for bounded memory.
//
// # Reset contract
//
// Release deactivates and fully resets an item in one step: transform and
// velocity back to the pool origin, held/highlight flags cleared, collision
// disabled, identity cleared. A released item is indistinguishable from a
// freshly created one, so no state ever leaks between reuses.
//
// Misuse (releasing nil, a foreign item, or an item already in the queue) is
// logged and ignored; it never panics and never corrupts the queue.
package pool
