package server

// Server is a transport or a group of transports with a blocking lifecycle.
type Server interface {
	// RunServer serves until the server is shut down.
	RunServer()

	// Shutdown stops accepting new work and waits for in-flight requests.
	Shutdown()
}
