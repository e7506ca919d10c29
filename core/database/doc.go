// Package database handles connections to the content-catalog database and
// schema inspection.
//
// It wraps GORM to configure MySQL (live-ops) or SQLite (local/test)
// connections from the application's configuration. The catalog holds the
// live-ops view of the authored ingredient set in the content_items table;
// the content feature cross-checks authored JSON against it.
//
// # Schema Inspection
//
// GetTableColumns and VerifyTable inspect the catalog schema so the
// integrity checks can tell "column missing" apart from "row missing"
// instead of failing with a raw SQL error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("catalog unavailable", zap.Error(err))
//	}
package database
