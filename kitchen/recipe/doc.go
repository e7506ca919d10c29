// Package recipe implements the food-combination rules and their lookup
// index.
//
// A Combination is an unordered pair of ingredient IDs; a Recipe is a result
// ID plus every combination that produces it. The Database owns the authored
// recipe list and answers "what do these two ingredients make?" through a
// canonical-key index.
//
// # Canonical keys
//
// The index maps a Key to a result ID. KeyOf de-duplicates, drops empty IDs,
// sorts and joins the remainder, so the two orderings of a pair always
// produce the same key. This order independence is the correctness property
// the whole lookup depends on.
//
// # Laziness and consistency
//
// Every mutation invalidates the index synchronously; the next lookup
// rebuilds it before answering. There is no background rebuild, so a read
// issued right after a write always sees the write.
//
// # Authoring errors
//
// Invalid combinations are skipped with a warning at index-build time and a
// duplicate canonical key keeps its first-seen (earliest authored) mapping.
// Both degrade gameplay to "no combination found" instead of crashing; the
// offline validate command reports them so they never ship.
package recipe
