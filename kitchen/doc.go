// Package kitchen is the runtime food orchestrator: the one façade gameplay
// code talks to when it spawns, combines, transforms or destroys food items.
//
// The orchestrator wires the three lower layers together: the ingredient
// registry (what exists), the recipe database (what combines into what) and
// the item pool (reusable instances). It also owns the active-item set and is
// handed explicitly to call sites; there is no global instance.
//
// All operations are synchronous, tick-driven and all-or-nothing: a combine
// either spawns the result and releases both inputs, or leaves everything
// untouched. Data-driven failures (no matching recipe, exhausted pool,
// unknown identity) return nil and at most a developer-facing log entry.
package kitchen
