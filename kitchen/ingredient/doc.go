// Package ingredient defines the authored ingredient identities of the game.
//
// An Identity describes one food state/variant: its display data, its icon in
// the asset bucket, whether it can be eaten, and the identities it turns into
// when processed (chopped, cooked, burnt). Identities are authored in JSON,
// loaded once at startup and immutable for the rest of the session.
//
// # Stable IDs
//
// Every identity carries a stable string ID assigned at authoring time. All
// equality, hashing and cross-references (processing results, recipe
// combinations, catalog rows) use the ID, never object addresses.
//
// # Validation
//
// Authoring mistakes are never fatal. The loader skips or nulls offending
// entries with a logged warning, and Registry.Audit produces the full list of
// problems for the offline validate command:
//
//	reg, err := ingredient.LoadFile("data/ingredients.json", logger)
//	problems := reg.Audit()
package ingredient
