package sync

import (
	"fmt"
	"sort"

	"morphood/core/database"
	"morphood/feature/content/models"
	"morphood/kitchen/ingredient"

	"gorm.io/gorm"
)

// ActionType represents the type of catalog mutation.
type ActionType string

const (
	// ActionInsert inserts an authored identity missing from the catalog.
	ActionInsert ActionType = "insert"
	// ActionUpdate repairs a catalog row whose fields drifted from the
	// authored definition.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a catalog row that is no longer authored.
	ActionDelete ActionType = "delete"
)

// Action represents one planned catalog mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the ingredient ID.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Row is the desired catalog row. Empty for delete actions.
	Row models.CatalogRow `json:"-"`
}

// PlanSummary provides aggregate counts for a sync plan.
type PlanSummary struct {
	Authored     int `json:"authored"`
	CatalogRows  int `json:"catalog_rows"`
	Inserts      int `json:"inserts"`
	Updates      int `json:"updates"`
	Deletes      int `json:"deletes"`
	TotalActions int `json:"total_actions"`
}

// Plan contains the planned catalog mutations.
type Plan struct {
	Actions []Action    `json:"actions"`
	Summary PlanSummary `json:"summary"`
}

// Options controls plan and apply behavior.
type Options struct {
	// DoPurge enables deletion of catalog rows no longer authored.
	// Inserts and updates are always planned.
	DoPurge bool

	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the user has confirmed destructive actions.
	// If false, ApplyPlan will not execute regardless of DryRun.
	Confirmed bool
}

// BuildPlan diffs the authored ingredient set against the catalog table and
// returns the mutations that would make the catalog match. The authored set
// is the source of truth; the catalog is never synced back into the JSON.
func BuildPlan(db *gorm.DB, table string, identities []*ingredient.Identity, opts Options) (*Plan, error) {
	missingCols, err := database.VerifyTable(db, table, models.CatalogColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect catalog table %s: %w", table, err)
	}
	if len(missingCols) > 0 {
		return nil, fmt.Errorf("catalog table %s is missing columns: %v", table, missingCols)
	}

	var rows []models.CatalogRow
	if err := db.Table(table).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read catalog table %s: %w", table, err)
	}

	byID := make(map[string]models.CatalogRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	plan := &Plan{Summary: PlanSummary{
		Authored:    len(identities),
		CatalogRows: len(rows),
	}}

	authored := make(map[string]struct{}, len(identities))
	for _, def := range identities {
		authored[string(def.ID)] = struct{}{}
		want := rowOf(def)

		have, ok := byID[string(def.ID)]
		if !ok {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionInsert,
				Key:    string(def.ID),
				Reason: "not in catalog",
				Row:    want,
			})
			plan.Summary.Inserts++
			continue
		}
		if have != want {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionUpdate,
				Key:    string(def.ID),
				Reason: describeDrift(want, have),
				Row:    want,
			})
			plan.Summary.Updates++
		}
	}

	if opts.DoPurge {
		orphaned := make([]string, 0)
		for _, row := range rows {
			if _, ok := authored[row.ID]; !ok {
				orphaned = append(orphaned, row.ID)
			}
		}
		sort.Strings(orphaned)
		for _, id := range orphaned {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionDelete,
				Key:    id,
				Reason: "no longer authored",
			})
			plan.Summary.Deletes++
		}
	}

	plan.Summary.TotalActions = len(plan.Actions)
	return plan, nil
}

// ApplyPlan executes the actions in a sync plan inside a transaction.
// Returns the number of actions executed. Requires opts.Confirmed=true and
// opts.DryRun=false to actually execute.
func ApplyPlan(db *gorm.DB, table string, plan *Plan, opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if len(plan.Actions) == 0 {
		return 0, nil
	}

	executed := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, action := range plan.Actions {
			switch action.Type {
			case ActionInsert:
				if err := tx.Table(table).Create(&action.Row).Error; err != nil {
					return fmt.Errorf("failed to insert %s: %w", action.Key, err)
				}
			case ActionUpdate:
				if err := tx.Table(table).Where("id = ?", action.Key).Updates(map[string]any{
					"display_name": action.Row.DisplayName,
					"category":     action.Row.Category,
					"edible":       action.Row.Edible,
				}).Error; err != nil {
					return fmt.Errorf("failed to update %s: %w", action.Key, err)
				}
			case ActionDelete:
				if err := tx.Table(table).Where("id = ?", action.Key).Delete(&models.CatalogRow{}).Error; err != nil {
					return fmt.Errorf("failed to delete %s: %w", action.Key, err)
				}
			default:
				return fmt.Errorf("unknown action type %q", action.Type)
			}
			executed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return executed, nil
}

func rowOf(def *ingredient.Identity) models.CatalogRow {
	edible := 0
	if def.Edible {
		edible = 1
	}
	return models.CatalogRow{
		ID:          string(def.ID),
		DisplayName: def.DisplayName,
		Category:    def.Category,
		Edible:      edible,
	}
}

func describeDrift(want, have models.CatalogRow) string {
	var fields []string
	if want.DisplayName != have.DisplayName {
		fields = append(fields, "display_name")
	}
	if want.Category != have.Category {
		fields = append(fields, "category")
	}
	if want.Edible != have.Edible {
		fields = append(fields, "edible")
	}
	return fmt.Sprintf("drifted fields: %v", fields)
}
