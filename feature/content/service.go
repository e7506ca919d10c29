package content

import (
	"context"
	"fmt"

	"morphood/core/storage"
	"morphood/feature/content/checks"
	"morphood/feature/content/models"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service answers content queries and runs integrity checks over the loaded
// registry and recipe database.
type Service struct {
	cfg      Config
	registry *ingredient.Registry
	recipes  *recipe.Database
	client   storage.Client
	bucket   string
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new content service. The catalog db may be nil; the
// catalog check then reports unavailability instead of failing at startup.
func NewService(cfg Config, registry *ingredient.Registry, recipes *recipe.Database,
	client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		registry: registry,
		recipes:  recipes,
		client:   client,
		bucket:   bucket,
		db:       db,
		logger:   logger,
	}
}

// Ingredients returns every authored identity in authored order.
func (s *Service) Ingredients() []models.IngredientView {
	defs := s.registry.All()
	out := make([]models.IngredientView, 0, len(defs))
	for _, def := range defs {
		out = append(out, viewOf(def))
	}
	return out
}

// Ingredient returns a single identity by ID.
func (s *Service) Ingredient(id string) (models.IngredientView, bool) {
	def, ok := s.registry.Get(ingredient.ID(id))
	if !ok {
		return models.IngredientView{}, false
	}
	return viewOf(def), true
}

// Recipes returns every authored recipe.
func (s *Service) Recipes() []models.RecipeView {
	recipes := s.recipes.Recipes()
	out := make([]models.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		view := models.RecipeView{Result: string(r.Result)}
		for _, c := range r.Combinations {
			pair := make([]string, 0, len(c.Ingredients))
			for _, id := range c.Ingredients {
				pair = append(pair, string(id))
			}
			view.Combinations = append(view.Combinations, pair)
		}
		out = append(out, view)
	}
	return out
}

// Combine answers a combination dry-run for two ingredient IDs.
func (s *Service) Combine(a, b string) models.CombinationResult {
	result, found := s.recipes.FindCombination(ingredient.ID(a), ingredient.ID(b))
	return models.CombinationResult{
		A:      a,
		B:      b,
		Found:  found,
		Result: string(result),
	}
}

// CheckRecipes runs the authoring audit over recipes and registry.
func (s *Service) CheckRecipes() []string {
	return checks.CheckRecipes(s.recipes, s.registry)
}

// CheckIcons verifies every identity's icon asset exists in the bucket.
func (s *Service) CheckIcons(ctx context.Context) (models.IconReport, error) {
	return checks.CheckIcons(ctx, s.client, s.bucket, s.cfg.IconPrefix, s.registry.All())
}

// CheckCatalog cross-checks the authored set against the content catalog.
func (s *Service) CheckCatalog() (models.CatalogReport, error) {
	if s.db == nil {
		return models.CatalogReport{}, fmt.Errorf("content catalog unavailable")
	}
	return checks.CheckCatalog(s.db, s.cfg.CatalogTable, s.registry.All())
}

func viewOf(def *ingredient.Identity) models.IngredientView {
	view := models.IngredientView{
		ID:          string(def.ID),
		DisplayName: def.DisplayName,
		Icon:        def.Icon,
		Edible:      def.Edible,
		Category:    def.Category,
		Tags:        def.Tags,
	}
	if len(def.Processing) > 0 {
		view.Processing = make(map[string]string, len(def.Processing))
		for op, result := range def.Processing {
			view.Processing[string(op)] = string(result)
		}
	}
	return view
}
