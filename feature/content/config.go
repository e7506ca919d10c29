package content

// Config holds configuration for the authored content sources.
type Config struct {
	// IngredientsPath is the authored ingredient definitions JSON file.
	IngredientsPath string `mapstructure:"ingredients_path" default:"data/ingredients.json"`
	// RecipesPath is the authored recipe definitions JSON file.
	RecipesPath string `mapstructure:"recipes_path" default:"data/recipes.json"`
	// CatalogTable is the content-catalog table cross-checked against the
	// authored ingredient set.
	CatalogTable string `mapstructure:"catalog_table" default:"content_items"`
	// IconPrefix is prepended to identity icon paths when checking the
	// asset bucket.
	IconPrefix string `mapstructure:"icon_prefix" default:""`
}
