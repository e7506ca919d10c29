package cmd

import (
	"fmt"
	"os"

	"morphood/core/config"
	"morphood/core/database"
	"morphood/core/logger"
	"morphood/core/storage"
	"morphood/feature/content/checks"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var iconsFlag bool
var catalogFlag bool
var fixFlag bool

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the authored ingredient and recipe content",
	Long: `Loads the ingredient and recipe definitions and audits them for
authoring mistakes: unknown references, self-combinations, duplicate
combinations and inedible dead-ends. With --icons the icon assets in the
storage bucket are verified too, and with --catalog the authored set is
cross-checked against the content catalog database.

Any problem is a hard failure and exits non-zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}

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

		failed := false

		logg.Info("Auditing recipes and ingredients...")
		problems := checks.CheckRecipes(recipes, registry)
		if len(problems) == 0 {
			logg.Info("Recipes and ingredients are consistent.")
		} else {
			failed = true
			for _, p := range problems {
				logg.Warn("Content problem", zap.String("problem", p))
			}
		}

		if iconsFlag {
			logg.Info("Checking icon assets...")
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}

			report, err := checks.CheckIcons(cmd.Context(), store, cfg.Storage.Bucket,
				cfg.Content.IconPrefix, registry.All())
			if err != nil {
				logg.Fatal("Icon check failed", zap.Error(err))
			}
			if len(report.Missing) == 0 {
				logg.Info("Icon assets are present.", zap.Int("checked", report.Checked))
			} else {
				logg.Warn("Missing icon assets", zap.Strings("missing", report.Missing))

				if fixFlag && len(report.MissingObjects) > 0 {
					logg.Info("Uploading placeholders for missing icons...")
					uploaded, err := checks.FixIcons(cmd.Context(), store, cfg.Storage.Bucket, report.MissingObjects)
					if err != nil {
						logg.Fatal("Failed to upload placeholders", zap.Error(err))
					}
					logg.Info("Placeholders uploaded", zap.Int("count", uploaded))
				}

				// Placeholders cover missing files; an identity with no
				// authored icon path still fails.
				if !fixFlag || len(report.MissingObjects) < len(report.Missing) {
					failed = true
				}
			}
			if len(report.Orphaned) > 0 {
				failed = true
				logg.Warn("Orphaned icon assets", zap.Strings("orphaned", report.Orphaned))
			}
		}

		if catalogFlag {
			logg.Info("Cross-checking content catalog...")
			db, err := database.Connect(cfg.Database)
			if err != nil {
				logg.Fatal("Catalog connection required for --catalog", zap.Error(err))
			}

			report, err := checks.CheckCatalog(db, cfg.Content.CatalogTable, registry.All())
			if err != nil {
				logg.Fatal("Catalog check failed", zap.Error(err))
			}
			if report.Clean() {
				logg.Info("Content catalog agrees with the authored set.")
			} else {
				failed = true
				if len(report.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
				}
				if len(report.Missing) > 0 {
					logg.Warn("Missing from catalog", zap.Strings("ids", report.Missing))
				}
				if len(report.Orphaned) > 0 {
					logg.Warn("Orphaned catalog rows", zap.Strings("ids", report.Orphaned))
				}
				if len(report.Mismatches) > 0 {
					logg.Warn("Field mismatches", zap.Strings("mismatches", report.Mismatches))
				}
			}
		}

		if failed {
			logg.Error("Content validation failed")
			os.Exit(1)
		}
		logg.Info("Content validation passed")
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&iconsFlag, "icons", false, "Verify icon assets in the storage bucket")
	validateCmd.Flags().BoolVar(&catalogFlag, "catalog", false, "Cross-check the content catalog database")
	validateCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload placeholder images for missing icons (with --icons)")
}
