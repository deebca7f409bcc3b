// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every [InvalidValueError]. It is the only
	// error a lookup can produce and it is never fatal.
	ErrInvalidValue = errors.New("incorrect option value")

	// ErrUnsupportedValue is returned when a decoded source value is neither a
	// scalar string, number nor boolean.
	ErrUnsupportedValue = errors.New("unsupported option value")
)

// InvalidValueError reports a string that is neither in the truthy nor the
// falsy set recognised by [ResolveBool].
type InvalidValueError struct {
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidValue, e.Value)
}

// Is makes errors.Is(err, ErrInvalidValue) succeed.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
