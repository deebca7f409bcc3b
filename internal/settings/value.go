// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind tells which member of the [Value] union is set.
type Kind uint8

const (
	// KindString marks a raw textual option, as read from lms.ini or uiconfig.
	KindString Kind = iota
	// KindBool marks a compiled-in boolean default.
	KindBool
)

// Value is a raw option value: either a string or a boolean.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	b    bool
}

// String wraps s into a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool wraps b into a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the member of the union that is set.
func (v Value) Kind() Kind {
	return v.kind
}

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool {
	return v.kind == KindBool
}

// IsEmpty reports whether v is the empty string. Boolean values are never empty.
func (v Value) IsEmpty() bool {
	return v.kind == KindString && v.str == ""
}

// AsBool returns the boolean member and whether v actually holds a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String returns the textual form of v. Booleans are rendered as "true" or
// "false".
func (v Value) String() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.b)
	}
	return v.str
}

// Interface returns v as a plain Go value (string or bool).
func (v Value) Interface() any {
	if v.kind == KindBool {
		return v.b
	}
	return v.str
}

// MarshalJSON encodes v as a JSON string or boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON accepts JSON strings, booleans and numbers. Numbers keep their
// literal text so that "0755" style values survive.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case bool:
		*v = Bool(value)
	case string:
		*v = String(value)
	case float64:
		*v = String(string(b))
	case nil:
		*v = String("")
	default:
		return fmt.Errorf("%w: unsupported json type %T", ErrUnsupportedValue, raw)
	}
	return nil
}

// UnmarshalYAML accepts YAML scalars. Booleans stay booleans, every other
// scalar keeps its source text.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d is not a scalar", ErrUnsupportedValue, node.Line)
	}

	if node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	}

	if node.ShortTag() == "!!null" {
		*v = String("")
		return nil
	}

	*v = String(node.Value)
	return nil
}
