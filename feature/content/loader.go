package content

import (
	"morphood/core/storage"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Content feature.
func NewFeature(cfg Config, registry *ingredient.Registry, recipes *recipe.Database,
	client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(cfg, registry, recipes, client, bucket, db, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
