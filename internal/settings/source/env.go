// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-lms/internal/settings"
)

// DefaultEnvPrefix is the prefix of option override variables.
const DefaultEnvPrefix = "LMS_"

// sectionSeparator separates section and key inside a variable name, so that
// keys may contain single underscores: LMS_MAIL__SMTP_HOST → mail.smtp_host.
const sectionSeparator = "__"

// FromEnv collects option overrides from environ (as returned by os.Environ).
// Variables without the prefix or without a section separator are ignored.
func FromEnv(prefix string, environ []string) settings.Tree {
	tree := settings.Tree{}

	for name, value := range env.ToMap(environ) {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}

		section, key, ok := strings.Cut(rest, sectionSeparator)
		if !ok || section == "" || key == "" {
			continue
		}

		tree.Set(section, key, settings.String(value))
	}
	return tree
}
