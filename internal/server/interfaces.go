package server

// Server is the lifecycle contract for the daemon's admin endpoint.
//
// RunServer blocks until a stop signal arrives or Shutdown is called from
// elsewhere; Shutdown drains in-flight requests before returning.
type Server interface {
	RunServer()
	Shutdown()
}
