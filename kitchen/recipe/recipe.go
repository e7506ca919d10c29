package recipe

import "morphood/kitchen/ingredient"

// Combination is an unordered pair of ingredient IDs that yields a recipe's
// result. Authored at design time, read-only at runtime.
type Combination struct {
	Ingredients []ingredient.ID `json:"ingredients"`
}

// Key returns the canonical key of the combination, or the zero Key when the
// combination is invalid.
func (c Combination) Key() Key {
	if !c.IsValid() {
		return ""
	}
	return KeyOf(c.Ingredients...)
}

// IsValid reports whether the combination has exactly two distinct
// non-empty ingredient IDs, neither containing the key separator.
func (c Combination) IsValid() bool {
	if len(c.Ingredients) != combinationSize {
		return false
	}
	distinct := canonicalize(c.Ingredients)
	if len(distinct) != combinationSize {
		return false
	}
	for _, id := range distinct {
		if !validKeyID(id) {
			return false
		}
	}
	return true
}

// Matches reports whether the combination covers exactly the given
// ingredient set.
func (c Combination) Matches(ids ...ingredient.ID) bool {
	k := c.Key()
	return !k.IsZero() && k == KeyOf(ids...)
}

// Recipe is one result identity plus every combination that produces it.
type Recipe struct {
	Result       ingredient.ID `json:"result"`
	Combinations []Combination `json:"combinations"`
}

// IsValid reports whether the recipe has a result and at least one valid
// combination.
func (r Recipe) IsValid() bool {
	if r.Result.IsZero() {
		return false
	}
	for _, c := range r.Combinations {
		if c.IsValid() {
			return true
		}
	}
	return false
}
