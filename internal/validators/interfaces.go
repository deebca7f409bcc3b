// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks input that enters the system from outside the
// option file, such as rows of the uiconfig table.
package validators

import "context"

// Validator validates a value. fields optionally restricts the check to the
// named fields; an empty list checks every field.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
