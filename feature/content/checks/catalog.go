package checks

import (
	"fmt"

	"morphood/core/database"
	"morphood/feature/content/models"
	"morphood/kitchen/ingredient"

	"gorm.io/gorm"
)

// CheckCatalog cross-checks the authored ingredient set against the live-ops
// content catalog: authored identities missing from the catalog, catalog
// rows no longer authored, and field mismatches on shared IDs.
func CheckCatalog(db *gorm.DB, table string, identities []*ingredient.Identity) (models.CatalogReport, error) {
	report := models.CatalogReport{}

	missingCols, err := database.VerifyTable(db, table, models.CatalogColumns)
	if err != nil {
		return report, fmt.Errorf("failed to inspect catalog table %s: %w", table, err)
	}
	if len(missingCols) > 0 {
		// Field comparison would produce noise on a broken schema.
		report.MissingColumns = missingCols
		return report, nil
	}

	var rows []models.CatalogRow
	if err := db.Table(table).Find(&rows).Error; err != nil {
		return report, fmt.Errorf("failed to read catalog table %s: %w", table, err)
	}

	byID := make(map[string]models.CatalogRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	authored := make(map[string]struct{}, len(identities))
	for _, def := range identities {
		authored[string(def.ID)] = struct{}{}

		row, ok := byID[string(def.ID)]
		if !ok {
			report.Missing = append(report.Missing, string(def.ID))
			continue
		}
		if row.DisplayName != def.DisplayName {
			report.Mismatches = append(report.Mismatches, fmt.Sprintf(
				"%s: display_name mismatch (json: %q, catalog: %q)",
				def.ID, def.DisplayName, row.DisplayName))
		}
		if row.Category != def.Category {
			report.Mismatches = append(report.Mismatches, fmt.Sprintf(
				"%s: category mismatch (json: %q, catalog: %q)",
				def.ID, def.Category, row.Category))
		}
		if (row.Edible != 0) != def.Edible {
			report.Mismatches = append(report.Mismatches, fmt.Sprintf(
				"%s: edible mismatch (json: %v, catalog: %v)",
				def.ID, def.Edible, row.Edible != 0))
		}
	}

	for _, row := range rows {
		if _, ok := authored[row.ID]; !ok {
			report.Orphaned = append(report.Orphaned, row.ID)
		}
	}

	return report, nil
}
