package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"morphood/core/config"
	"morphood/core/database"
	"morphood/core/logger"
	"morphood/feature/content/sync"
	"morphood/kitchen/ingredient"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	purgeSync  bool
	dryRunSync bool
	yesConfirm bool
)

// syncCmd pushes the authored content into the catalog database.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the authored ingredient set into the content catalog",
	Long: `Diffs the authored ingredient definitions against the content catalog
database and applies the difference: missing rows are inserted and drifted
rows are repaired. The authored JSON is always the source of truth.

Rows that are no longer authored are only deleted with --purge.

Examples:
  # Report and apply inserts/updates (with interactive confirmation)
  sync

  # Also delete rows that are no longer authored
  sync --purge

  # Plan only, never mutate
  sync --dry-run

  # Non-interactive
  sync --purge --yes`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&purgeSync, "purge", false, "Delete catalog rows that are no longer authored")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	registry, err := ingredient.LoadFile(cfg.Content.IngredientsPath, l)
	if err != nil {
		return fmt.Errorf("failed to load ingredient definitions: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	opts := sync.Options{
		DoPurge:   purgeSync,
		DryRun:    dryRunSync,
		Confirmed: false, // Will be set after confirmation prompt
	}

	l.Info("Planning catalog sync...", zap.String("table", cfg.Content.CatalogTable))
	plan, err := sync.BuildPlan(db, cfg.Content.CatalogTable, registry.All(), opts)
	if err != nil {
		return fmt.Errorf("failed to plan catalog sync: %w", err)
	}

	printSyncReport(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("Catalog already matches the authored set.")
		return nil
	}

	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := sync.ApplyPlan(db, cfg.Content.CatalogTable, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply sync plan: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printSyncReport prints a formatted sync report using logger.
func printSyncReport(l *zap.Logger, plan *sync.Plan) {
	s := plan.Summary

	l.Info("Catalog sync report",
		zap.Int("authored", s.Authored),
		zap.Int("catalog_rows", s.CatalogRows),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("deletes", s.Deletes),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for i := 0; i < maxShow; i++ {
		action := plan.Actions[i]
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("Type 'yes' to confirm catalog mutations: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
