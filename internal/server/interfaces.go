// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests and blocks until SIGTERM, SIGINT or SIGQUIT
	// is received and the server has shut down.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
