package recipe

import (
	"encoding/json"
	"fmt"
	"os"

	"morphood/kitchen/ingredient"

	"go.uber.org/zap"
)

// Database owns the authoritative recipe list and the canonical-key index
// over it. The index is rebuilt lazily: mutations only mark it dirty, the
// next lookup rebuilds it, so a read after a write always sees the write.
//
// All methods are synchronous and must be called from the simulation tick;
// the database performs no locking of its own.
type Database struct {
	recipes []*Recipe
	index   map[Key]ingredient.ID
	dirty   bool
	logger  *zap.Logger
}

// NewDatabase creates an empty recipe database.
func NewDatabase(logger *zap.Logger) *Database {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Database{
		index:  make(map[Key]ingredient.ID),
		logger: logger,
	}
}

// FindCombination returns the result identity for the given ingredient set,
// if a recipe has an exact matching combination. Inputs are de-duplicated
// and empty IDs are dropped before key construction; a miss is absence, not
// an error.
func (d *Database) FindCombination(ids ...ingredient.ID) (ingredient.ID, bool) {
	key := KeyOf(ids...)
	if key.IsZero() {
		return "", false
	}
	d.ensureIndex()
	result, ok := d.index[key]
	return result, ok
}

// HasCombination reports whether a recipe covers the given ingredient set.
func (d *Database) HasCombination(ids ...ingredient.ID) bool {
	_, ok := d.FindCombination(ids...)
	return ok
}

// AddCombination registers a new combination producing result. It returns
// false when the input has fewer than two distinct non-empty IDs, when
// result is empty or equal to one of the inputs, or when an identical
// combination already exists in any argument order. On success the
// combination joins the existing recipe for result, or a new recipe is
// created, and the index is invalidated.
func (d *Database) AddCombination(ids []ingredient.ID, result ingredient.ID) bool {
	distinct := canonicalize(ids)
	if len(distinct) != combinationSize {
		return false
	}
	if result.IsZero() {
		return false
	}
	for _, id := range distinct {
		if !validKeyID(id) {
			return false
		}
		if id == result {
			// An ingredient combining into itself would let players
			// duplicate items; reject outright.
			return false
		}
	}
	if d.HasCombination(distinct...) {
		return false
	}

	combo := Combination{Ingredients: distinct}
	for _, r := range d.recipes {
		if r.Result == result {
			r.Combinations = append(r.Combinations, combo)
			d.invalidate()
			return true
		}
	}
	d.recipes = append(d.recipes, &Recipe{Result: result, Combinations: []Combination{combo}})
	d.invalidate()
	return true
}

// RemoveCombination removes every combination matching the given ingredient
// set from whichever recipes hold it. A recipe left without combinations is
// removed entirely. It reports whether anything was removed.
func (d *Database) RemoveCombination(ids ...ingredient.ID) bool {
	key := KeyOf(ids...)
	if key.IsZero() {
		return false
	}

	// A miss must not touch the recipe list at all; the rebuild below also
	// prunes empty recipes, which a no-op removal has no business doing.
	found := false
	for _, r := range d.recipes {
		for _, c := range r.Combinations {
			if c.Key() == key {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return false
	}

	removed := false
	kept := d.recipes[:0]
	for _, r := range d.recipes {
		combos := r.Combinations[:0]
		for _, c := range r.Combinations {
			if c.Key() == key {
				removed = true
				continue
			}
			combos = append(combos, c)
		}
		r.Combinations = combos
		if len(r.Combinations) > 0 {
			kept = append(kept, r)
		}
	}
	d.recipes = kept

	if removed {
		d.invalidate()
	}
	return removed
}

// Recipes returns a copy of the recipe list in authored order.
func (d *Database) Recipes() []Recipe {
	out := make([]Recipe, len(d.recipes))
	for i, r := range d.recipes {
		out[i] = *r
	}
	return out
}

// Len returns the number of recipes.
func (d *Database) Len() int {
	return len(d.recipes)
}

// invalidate marks the index stale. Called on every mutation.
func (d *Database) invalidate() {
	d.dirty = true
}

// ensureIndex rebuilds the canonical-key index when stale.
func (d *Database) ensureIndex() {
	if !d.dirty && d.index != nil {
		return
	}

	index := make(map[Key]ingredient.ID, len(d.recipes)*2)
	for _, r := range d.recipes {
		if r.Result.IsZero() {
			d.logger.Warn("Skipping recipe with empty result")
			continue
		}
		for _, c := range r.Combinations {
			if !c.IsValid() {
				d.logger.Warn("Skipping invalid combination",
					zap.String("result", string(r.Result)))
				continue
			}
			key := c.Key()
			if first, exists := index[key]; exists {
				// First-seen mapping wins; the validate command turns
				// this warning into a hard authoring failure.
				d.logger.Warn("Duplicate combination key, keeping first mapping",
					zap.String("key", string(key)),
					zap.String("kept", string(first)),
					zap.String("ignored", string(r.Result)))
				continue
			}
			index[key] = r.Result
		}
	}
	d.index = index
	d.dirty = false
}

// LoadFile reads an authored JSON array of recipes into a new database.
func LoadFile(path string, logger *zap.Logger) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe definitions: %w", err)
	}
	return Parse(data, logger)
}

// Parse builds a database from raw authored JSON. Entries are kept verbatim;
// invalid ones surface as warnings at index-build time and as failures in
// Audit.
func Parse(data []byte, logger *zap.Logger) (*Database, error) {
	var defs []*Recipe
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe definitions: %w", err)
	}
	db := NewDatabase(logger)
	for _, def := range defs {
		if def == nil {
			db.logger.Warn("Skipping null recipe entry")
			continue
		}
		db.recipes = append(db.recipes, def)
	}
	db.invalidate()
	return db, nil
}
