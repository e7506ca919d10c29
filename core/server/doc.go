// Package server holds the configuration of the editor-facing content API
// server.
//
// The server itself is assembled in the start command: Fiber app, tracing
// and auth middleware, then the registered features. This package only
// carries the settings shared between the command and the middleware.
package server
