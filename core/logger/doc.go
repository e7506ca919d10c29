// Package logger provides a structured logging facility based on Zap.
//
// The gameplay core and the content tooling both log through Zap: authoring
// mistakes and pool misuse surface as warnings, never as faults, so a single
// correlated log stream covers a session end to end.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber context
// and attaches it to the log entry, so all logs belonging to one content API
// request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Content loaded")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
