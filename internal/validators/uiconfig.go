// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-lms/models"
)

// Fields of [models.UIConfigOption] that can be validated separately.
const (
	FieldSection = "section"
	FieldVar     = "var"
)

// UIConfigOptionValidator rejects uiconfig rows whose names could never be
// looked up. A section holding a dot would be split at the wrong place; the
// key may contain dots since only the first one separates the section.
type UIConfigOptionValidator struct{}

func NewUIConfigOptionValidator() Validator {
	return &UIConfigOptionValidator{}
}

func (v *UIConfigOptionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UIConfigOption:
		return v.validateOption(ctx, value, fields...)
	case *models.UIConfigOption:
		return v.validateOption(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UIConfigOptionValidator) validateOption(_ context.Context, option models.UIConfigOption, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSection, FieldVar}
	}

	for _, f := range fields {
		switch f {
		case FieldSection:
			if option.Section == "" {
				return ErrEmptySection
			}
			if strings.Contains(option.Section, ".") || hasSpace(option.Section) {
				return ErrInvalidSection
			}
		case FieldVar:
			if option.Var == "" {
				return ErrEmptyVar
			}
			if hasSpace(option.Var) {
				return ErrInvalidVar
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
