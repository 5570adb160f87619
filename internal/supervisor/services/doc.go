// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

/*
Package services provides suture.Service wrappers for application components.

Components with their own lifecycle conventions (such as http.Server's
blocking ListenAndServe plus Shutdown pair) are adapted here to suture's
context-aware Serve(ctx) error contract, so the supervisor tree can
restart them on failure and stop them on shutdown.

# Service Wrappers

HTTP Server (HTTPServerService):
  - Wraps anything satisfying ListenAndServe/Shutdown, notably *http.Server
  - Starts the listener in a goroutine and waits for context cancellation
  - Performs graceful shutdown with a configurable timeout
  - Converts http.ErrServerClosed to nil since it is expected on shutdown

# Usage Example

	server := &http.Server{Addr: ":8080", Handler: router}
	svc := services.NewHTTPServerService(server, 10*time.Second)
	tree.AddAPIService(svc)

	// Start supervision
	tree.Serve(ctx)

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer for logging:

	func (s *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Testing

Services can be tested with mock components:

	type MockServer struct {
	    started  bool
	    shutdown bool
	}

	func (m *MockServer) ListenAndServe() error {
	    m.started = true
	    <-time.After(time.Hour) // Block until shutdown
	    return nil
	}

	func (m *MockServer) Shutdown(ctx context.Context) error {
	    m.shutdown = true
	    return nil
	}

# Thread Safety

All service wrappers are safe for concurrent use:
  - Context cancellation is handled atomically
  - Multiple Serve calls are not supported (undefined behavior)

# See Also

  - internal/supervisor: SupervisorTree that manages these services
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package services
