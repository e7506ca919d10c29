package models

// IngredientView is the API representation of one ingredient identity.
type IngredientView struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Icon        string            `json:"icon,omitempty"`
	Edible      bool              `json:"edible"`
	Category    string            `json:"category,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Processing  map[string]string `json:"processing,omitempty"`
}

// RecipeView is the API representation of one recipe.
type RecipeView struct {
	Result       string     `json:"result"`
	Combinations [][]string `json:"combinations"`
}

// CombinationResult is the answer to a combination dry-run.
type CombinationResult struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Found  bool   `json:"found"`
	Result string `json:"result,omitempty"`
}

// IconReport contains the results of the icon-asset check.
type IconReport struct {
	Checked  int      `json:"checked"`
	Missing  []string `json:"missing"`
	Orphaned []string `json:"orphaned"`

	// MissingObjects holds the bucket paths behind Missing, for --fix.
	// Identities without an authored icon have no path and are excluded.
	MissingObjects []string `json:"-"`
}

// CatalogReport contains the results of the content-catalog cross-check.
type CatalogReport struct {
	MissingColumns []string `json:"missing_columns,omitempty"`
	Missing        []string `json:"missing"`
	Orphaned       []string `json:"orphaned"`
	Mismatches     []string `json:"mismatches"`
}

// Clean reports whether the catalog agrees with the authored content.
func (r CatalogReport) Clean() bool {
	return len(r.MissingColumns) == 0 && len(r.Missing) == 0 &&
		len(r.Orphaned) == 0 && len(r.Mismatches) == 0
}
