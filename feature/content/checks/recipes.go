package checks

import (
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"
)

// CheckRecipes runs the full authoring audit: recipe problems (duplicate
// keys, self-combinations, invalid or dangling combinations) followed by
// registry problems (unknown processing targets, dead ends).
func CheckRecipes(db *recipe.Database, reg *ingredient.Registry) []string {
	problems := db.Audit(reg)
	return append(problems, reg.Audit()...)
}
