// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"github.com/MKhiriev/go-lms/internal/settings"
	"github.com/MKhiriev/go-lms/models"
)

// FromOptions converts uiconfig rows into a tree. Disabled rows are skipped;
// when a (section, var) pair repeats, the last row wins.
func FromOptions(options []models.UIConfigOption) settings.Tree {
	tree := settings.Tree{}
	for _, option := range options {
		if option.Disabled {
			continue
		}
		tree.Set(option.Section, option.Var, settings.String(option.Value))
	}
	return tree
}
