// Package server runs the HTTP transport of the demo search service,
// including startup, signal handling and graceful shutdown. Open search
// streams are cancelled on shutdown so it never waits for a client to
// hang up.
package server
