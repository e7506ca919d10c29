// Package content is the editor-facing view of the authored game content.
//
// It exposes read-only HTTP endpoints over the ingredient registry and the
// recipe database (listing, detail, combination dry-runs) and the integrity
// checks that keep authored JSON, the asset bucket and the live-ops content
// catalog in agreement.
//
// The gameplay core never depends on this package; it is tooling around the
// same loaded content.
package content
