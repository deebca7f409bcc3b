// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "errors"

var (
	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported option file format")

	// ErrReadingFile wraps every failure to open or parse an option file.
	ErrReadingFile = errors.New("error reading option file")
)
