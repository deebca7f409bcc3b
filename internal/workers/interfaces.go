// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the LMS backend.
package workers

import "context"

// Worker is a background job. Run must not block: it starts its own
// goroutine and stops once ctx is done.
type Worker interface {
	Run(ctx context.Context)

	// Wait blocks until the goroutine started by Run has returned.
	Wait()
}
