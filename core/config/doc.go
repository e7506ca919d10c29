// Package config provides configuration management for the Morphood content
// system.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file. The Config struct is the central repository for all settings,
// divided into subsections owned by the packages they configure:
//   - Server: content API settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket for ingredient assets
//   - Database: content-catalog connection details
//   - Content: authored JSON paths and catalog table name
//   - Kitchen: food pool capacity policy and spawn offset
//   - Log: level and encoding
//
// Defaults come from `default` struct tags, discovered by reflection, so a
// section's defaults live next to its fields.
package config
