// Package storage provides the asset-store client used by content checks.
//
// Ingredient identities reference icon and model assets by object path; the
// assets live in an S3-compatible bucket (MinIO). The Client interface wraps
// the handful of operations the integrity checks need (existence, stat,
// listing and upload) so tests can substitute the mock in storage/mocks.
package storage
