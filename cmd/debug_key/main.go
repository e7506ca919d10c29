package main

import (
	"fmt"
	"log"
	"os"

	"morphood/core/config"
	"morphood/kitchen/ingredient"
	"morphood/kitchen/recipe"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_key <ingredient-id> <ingredient-id> [more-ids...]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()
	db, err := recipe.LoadFile(cfg.Content.RecipesPath, logger)
	if err != nil {
		log.Fatal(err)
	}

	ids := make([]ingredient.ID, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		ids = append(ids, ingredient.ID(arg))
	}

	key := recipe.KeyOf(ids...)
	fmt.Printf("Canonical key: %q\n", key)
	if key == "" {
		fmt.Println("Not a valid combination (need two distinct ingredients)")
		os.Exit(1)
	}

	if len(ids) == 2 {
		if result, ok := db.FindCombination(ids[0], ids[1]); ok {
			fmt.Printf("Matches recipe -> %s\n", result)
		} else {
			fmt.Println("No recipe matches this combination")
		}
	}
}
