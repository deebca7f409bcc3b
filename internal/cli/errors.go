// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	// ErrOptionNotSet is returned by get for an absent option when no
	// --default was given.
	ErrOptionNotSet = errors.New("option is not set")

	// ErrInvalidTopicID is returned for a topic id that is not a positive integer.
	ErrInvalidTopicID = errors.New("topic id must be a positive integer")
)
