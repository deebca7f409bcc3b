// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-lms/internal/settings"
)

// LoadFile picks the loader by file extension: .ini, .conf and .cfg are read
// as INI, .yaml and .yml as YAML.
func LoadFile(path string) (settings.Tree, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".conf", ".cfg":
		return LoadINI(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
