// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySection   = errors.New("option section is empty")
	ErrInvalidSection = errors.New("option section must not contain dots or whitespace")
	ErrEmptyVar       = errors.New("option name is empty")
	ErrInvalidVar     = errors.New("option name must not contain whitespace")
)
