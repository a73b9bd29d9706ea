package server

// Server is the lifecycle of the search service transport.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown cancels open streams and stops the server.
	Shutdown()
}
