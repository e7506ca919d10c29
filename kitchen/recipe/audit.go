package recipe

import (
	"fmt"

	"morphood/kitchen/ingredient"
)

// Audit runs the full authoring audit over the recipe list: invalid
// combinations, duplicate canonical keys, self-combinations, and (when a
// registry is given) references to unknown ingredient identities.
//
// The runtime index tolerates all of these by degrading to "no combination
// found"; the offline validate command treats every returned problem as a
// failure so broken content never ships.
func (d *Database) Audit(reg *ingredient.Registry) []string {
	var problems []string
	seen := make(map[Key]ingredient.ID)

	for i, r := range d.recipes {
		label := fmt.Sprintf("recipe #%d (%s)", i+1, r.Result)
		if r.Result.IsZero() {
			problems = append(problems, fmt.Sprintf("recipe #%d: empty result", i+1))
		} else if reg != nil {
			if _, ok := reg.Get(r.Result); !ok {
				problems = append(problems, fmt.Sprintf(
					"%s: result references unknown identity %q", label, r.Result))
			}
		}
		if !r.IsValid() {
			problems = append(problems, fmt.Sprintf("%s: no valid combinations", label))
		}

		for _, c := range r.Combinations {
			if !c.IsValid() {
				problems = append(problems, fmt.Sprintf(
					"%s: combination %v needs exactly two distinct ingredients with valid IDs",
					label, c.Ingredients))
				continue
			}
			for _, id := range c.Ingredients {
				if id == r.Result {
					problems = append(problems, fmt.Sprintf(
						"%s: ingredient %q combines into itself", label, id))
				}
				if reg != nil {
					if _, ok := reg.Get(id); !ok {
						problems = append(problems, fmt.Sprintf(
							"%s: combination references unknown identity %q", label, id))
					}
				}
			}

			key := c.Key()
			if owner, dup := seen[key]; dup {
				problems = append(problems, fmt.Sprintf(
					"%s: combination key %q already claimed by recipe for %q",
					label, key, owner))
				continue
			}
			seen[key] = r.Result
		}
	}
	return problems
}
