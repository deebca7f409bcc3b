// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPathParameter is returned when a path parameter cannot be
	// parsed into the type the handler expects.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrEmptyOptionName is returned when the option name is missing.
	ErrEmptyOptionName = errors.New("empty option name")

	// ErrNoServices is returned by NewHandler without a services set.
	ErrNoServices = errors.New("no services for http handler")
)
