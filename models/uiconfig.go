// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UIConfigOption is a single row of the uiconfig table, the operator-editable
// copy of lms.ini kept in the database.
type UIConfigOption struct {
	// ID is the database primary key.
	ID int64 `json:"id"`

	// Section is the option section, e.g. "phpui".
	Section string `json:"section"`

	// Var is the option key inside Section, e.g. "default_module".
	Var string `json:"var"`

	// Value is the raw textual value.
	Value string `json:"value"`

	// Description is free text shown to operators.
	Description string `json:"description,omitempty"`

	// Disabled rows are kept in the table but never applied.
	Disabled bool `json:"disabled"`
}

// OptionCheck is the response body of the option check endpoint.
type OptionCheck struct {
	// Name is the qualified option name as requested.
	Name string `json:"name"`

	// Enabled is the boolean the option resolves to.
	Enabled bool `json:"enabled"`
}
