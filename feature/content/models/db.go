package models

// CatalogRow represents one row of the live-ops content catalog. The table
// name is configurable, so the row type carries no TableName of its own.
type CatalogRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	DisplayName string `gorm:"column:display_name"`
	Category    string `gorm:"column:category"`
	Edible      int    `gorm:"column:edible"` // tinyint(1)
}

// CatalogColumns lists the columns the cross-check requires.
var CatalogColumns = []string{"id", "display_name", "category", "edible"}
