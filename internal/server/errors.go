// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errNoHTTPHandler and errNoListenAddress explain why; both match
	// errNoServersAreCreated.
	errNoHTTPHandler   = errors.New("no http handler")
	errNoListenAddress = errors.New("no listen address")
)
