package server

// Server is the lifecycle contract for the journal service's transport
// servers. The HTTP server is the only implementation today; the interface
// keeps cmd/server decoupled from that choice.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
