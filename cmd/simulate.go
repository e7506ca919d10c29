package cmd

import (
	"fmt"
	"os"

	"morphood/core/config"
	"morphood/core/logger"
	"morphood/kitchen"
	"morphood/kitchen/geom"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted kitchen session against the authored content",
	Long: `Loads the authored content, builds a kitchen with the configured pool
and walks through a short session: spawning ingredients, processing them and
combining them. Useful as a smoke test of the content after authoring changes.`,
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

		k, err := kitchen.New(cfg.Kitchen, registry, recipes, logg)
		if err != nil {
			logg.Fatal("Failed to build kitchen", zap.Error(err))
		}

		logg.Info("Kitchen ready",
			zap.Int("ingredients", registry.Len()),
			zap.Int("recipes", recipes.Len()))

		counter := geom.Vec3{X: 1, Z: 1}

		// Spawn one of everything that has a processing chain, process it,
		// then try to combine each processed pair.
		for _, def := range registry.All() {
			it := k.SpawnItem(def.ID, counter)
			if it == nil {
				logg.Warn("Pool exhausted, stopping spawn loop", zap.String("id", string(def.ID)))
				break
			}
			logg.Info("Spawned", zap.String("id", string(def.ID)), zap.Uint64("serial", it.Serial()))

			for op := range def.Processing {
				if out := k.Transform(it, op, counter); out != nil {
					logg.Info("Processed",
						zap.String("op", string(op)),
						zap.String("into", string(out.Identity().ID)))
					it = out
					break
				}
			}
		}

		combined := walkCombinations(k, recipes, counter, logg)

		stats := k.PoolStats()
		logg.Info("Session complete",
			zap.Int("combinations", combined),
			zap.Int("active", k.ActiveCount()),
			zap.Int("pool_available", stats.Available),
			zap.Int("pool_created", stats.Created))

		k.Reset()
	},
}

// walkCombinations dry-runs every authored combination through the kitchen
// and returns how many combined successfully. Items it spawns are destroyed
// again before it returns, so the pool stats printed afterwards reflect only
// what the caller left active.
func walkCombinations(k *kitchen.Orchestrator, recipes *recipe.Database, counter geom.Vec3, logg *zap.Logger) int {
	combined := 0
	for _, r := range recipes.Recipes() {
		for _, c := range r.Combinations {
			if len(c.Ingredients) != 2 {
				continue
			}
			a := k.SpawnItem(c.Ingredients[0], counter)
			b := k.SpawnItem(c.Ingredients[1], counter)
			if a == nil || b == nil {
				// Whichever of the pair did spawn goes back to the pool,
				// otherwise it would linger as a phantom active item.
				if a != nil {
					k.DestroyItem(a)
				}
				if b != nil {
					k.DestroyItem(b)
				}
				logg.Warn("Pool exhausted, skipping combination", zap.String("result", string(r.Result)))
				continue
			}
			out := k.TryCombine(a, b, counter)
			if out == nil {
				k.DestroyItem(a)
				k.DestroyItem(b)
				continue
			}
			combined++
			logg.Info("Combined",
				zap.String("a", string(c.Ingredients[0])),
				zap.String("b", string(c.Ingredients[1])),
				zap.String("into", string(out.Identity().ID)))
			k.DestroyItem(out)
		}
	}
	return combined
}

func init() {
	RootCmd.AddCommand(simulateCmd)
}
