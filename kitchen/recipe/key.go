package recipe

import (
	"sort"
	"strings"

	"morphood/kitchen/ingredient"
)

// combinationSize is the number of distinct ingredients in a valid
// combination. The game only ever combines two items at once.
const combinationSize = 2

// keySeparator joins the sorted IDs of a canonical key. IDs containing it
// would make the joined form ambiguous (the sets {"a+b", "c"} and
// {"a", "b+c"} would collide), so such IDs are rejected everywhere: KeyOf
// yields the zero Key, combinations carrying them are invalid, and the
// ingredient registry refuses to register them.
const keySeparator = "+"

// Key is the canonical, order-independent representation of a combination's
// ingredient set. Equal ingredient sets produce equal keys regardless of
// argument order, and distinct sets produce distinct keys.
type Key string

// IsZero reports whether the key is unset.
func (k Key) IsZero() bool {
	return k == ""
}

// KeyOf builds the canonical key for a set of ingredient IDs. Empty IDs are
// dropped and duplicates collapse, so KeyOf(a, b) == KeyOf(b, a, b).
// It returns the zero Key when fewer than two distinct IDs remain or when
// any ID contains the separator.
func KeyOf(ids ...ingredient.ID) Key {
	distinct := canonicalize(ids)
	if len(distinct) < combinationSize {
		return ""
	}
	parts := make([]string, len(distinct))
	for i, id := range distinct {
		if !validKeyID(id) {
			return ""
		}
		parts[i] = string(id)
	}
	return Key(strings.Join(parts, keySeparator))
}

// validKeyID reports whether the ID may participate in key construction.
func validKeyID(id ingredient.ID) bool {
	return !strings.Contains(string(id), keySeparator)
}

// canonicalize returns the sorted distinct non-empty IDs of the input.
func canonicalize(ids []ingredient.ID) []ingredient.ID {
	out := make([]ingredient.ID, 0, len(ids))
	seen := make(map[ingredient.ID]struct{}, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
