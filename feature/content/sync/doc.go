// Package sync pushes the authored ingredient set into the live-ops content
// catalog. It plans insert, update and delete actions from a diff and applies
// them transactionally; the authored JSON is always the source of truth.
package sync
