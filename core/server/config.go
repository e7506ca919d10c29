package server

// Config holds configuration for the content API server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication (local editor use).
	ApiKey string `mapstructure:"api_key" default:""`
}

// RequiresAuth reports whether requests must present the API key.
func (c Config) RequiresAuth() bool {
	return c.ApiKey != ""
}
