// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-lms/internal/settings"
)

// LoadYAML reads a two-level YAML mapping:
//
//	mail:
//	  smtp_host: mx.example.net
//	phpui:
//	  force_ssl: true
//
// YAML booleans stay booleans; other scalars keep their source text.
func LoadYAML(path string) (settings.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}
	defer f.Close()

	var raw map[string]map[string]settings.Value
	if err = yaml.NewDecoder(f).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}

	tree := settings.Tree{}
	for section, keys := range raw {
		for key, v := range keys {
			tree.Set(section, key, v)
		}
	}
	return tree, nil
}
