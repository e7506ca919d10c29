package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"morphood/core/config"
	"morphood/core/database"
	"morphood/core/loader"
	"morphood/core/logger"
	"morphood/core/middleware/auth"
	"morphood/core/middleware/rayid"
	"morphood/core/storage"
	"morphood/feature/content"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the content server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load Authored Content
		registry, err := ingredient.LoadFile(cfg.Content.IngredientsPath, logg)
		if err != nil {
			logg.Fatal("Failed to load ingredient definitions", zap.Error(err))
		}
		recipes, err := recipe.LoadFile(cfg.Content.RecipesPath, logg)
		if err != nil {
			logg.Fatal("Failed to load recipe definitions", zap.Error(err))
		}
		logg.Info("Authored content loaded",
			zap.Int("ingredients", registry.Len()),
			zap.Int("recipes", recipes.Len()))

		// 4. Connect to Content Catalog (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional catalog connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to content catalog")
		}

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if !cfg.Server.RequiresAuth() {
			logg.Warn("No API key configured, requests are unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		mgr := loader.NewManager(logg)
		mgr.Register(content.NewFeature(cfg.Content, registry, recipes, store, cfg.Storage.Bucket, db, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
