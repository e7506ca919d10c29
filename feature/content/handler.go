package content

import (
	"morphood/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authored content.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/content")
	group.Get("/ingredients", h.HandleListIngredients)
	group.Get("/ingredients/:id", h.HandleGetIngredient)
	group.Get("/recipes", h.HandleListRecipes)
	group.Get("/combination", h.HandleCombination)
	group.Get("/integrity", h.HandleIntegrityCheck)
}

// HandleListIngredients returns every authored ingredient identity.
func (h *Handler) HandleListIngredients(c *fiber.Ctx) error {
	return c.JSON(h.service.Ingredients())
}

// HandleGetIngredient returns a single identity by ID.
func (h *Handler) HandleGetIngredient(c *fiber.Ctx) error {
	id := c.Params("id")
	view, ok := h.service.Ingredient(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown ingredient",
			"id":    id,
		})
	}
	return c.JSON(view)
}

// HandleListRecipes returns every authored recipe.
func (h *Handler) HandleListRecipes(c *fiber.Ctx) error {
	return c.JSON(h.service.Recipes())
}

// HandleCombination answers a combination dry-run for ?a=&b=.
func (h *Handler) HandleCombination(c *fiber.Ctx) error {
	a := c.Query("a")
	b := c.Query("b")
	if a == "" || b == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "both a and b query parameters are required",
		})
	}
	return c.JSON(h.service.Combine(a, b))
}

// HandleIntegrityCheck runs all content checks and returns a combined report.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering content integrity checks")

	report := make(map[string]interface{})

	problems := h.service.CheckRecipes()
	if len(problems) > 0 {
		l.Warn("Recipe problems detected", zap.Strings("problems", problems))
	}
	report["recipes"] = map[string]interface{}{"status": "checked", "problems": problems}

	if icons, err := h.service.CheckIcons(c.Context()); err != nil {
		report["icons"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["icons"] = icons
	}

	if catalog, err := h.service.CheckCatalog(); err != nil {
		report["catalog"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["catalog"] = catalog
	}

	return c.JSON(report)
}
