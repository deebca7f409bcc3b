// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/MKhiriev/go-lms/internal/settings"
)

// LoadINI reads an lms.ini style file. Keys outside of any [section] are
// ignored because every option must be addressable as "section.key".
func LoadINI(path string) (settings.Tree, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:      true,
		AllowBooleanKeys: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}

	return fromINI(file), nil
}

func fromINI(file *ini.File) settings.Tree {
	tree := settings.Tree{}
	for _, section := range file.Sections() {
		if strings.EqualFold(section.Name(), ini.DefaultSection) {
			continue
		}

		for _, key := range section.Keys() {
			tree.Set(section.Name(), key.Name(), settings.String(key.Value()))
		}
	}
	return tree
}
