// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the LMS backend.
//
// It wires the chi router, the request handlers and the middleware chain:
// panic recovery, trace ids, access logging and privilege-based hiding of
// pages. Handlers only translate between HTTP and the service layer.
package http
