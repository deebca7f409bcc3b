// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"strconv"
	"strings"
)

const (
	privilegesSection = "privileges"
	superuserKey      = "superuser"
	hidePrefix        = "hide"
)

// splitName splits a qualified "section.key" name at the first dot. Any
// further dots belong to the key. Both parts are lower-cased.
func splitName(name string) (section, key string) {
	section, key, _ = strings.Cut(name, ".")
	return strings.ToLower(section), strings.ToLower(key)
}

// Check resolves name to a boolean.
//
// When privileges.superuser is truthy every "privileges.*" name is true,
// except names whose key starts with "hide", which are false. Otherwise a
// missing section, missing key or empty key yields false, and a value outside
// the recognised sets is logged and yields false.
func (s *Store) Check(name string) bool {
	section, key := splitName(name)
	if key == "" {
		return false
	}

	if section == privilegesSection && s.isSuperuser() {
		return !strings.HasPrefix(key, hidePrefix)
	}

	v, ok := s.lookup(section, key)
	if !ok {
		return false
	}

	b, err := ResolveBool(v, false)
	if err != nil {
		s.warnInvalid(section, key, err)
	}
	return b
}

func (s *Store) isSuperuser() bool {
	v, ok := s.lookup(privilegesSection, superuserKey)
	if !ok {
		return false
	}
	b, err := ResolveBool(v, false)
	if err != nil {
		s.warnInvalid(privilegesSection, superuserKey, err)
	}
	return b
}

// Get returns the raw value stored under name. The empty string counts as
// absent, as do unknown sections, unknown keys and names without a key.
func (s *Store) Get(name string) (Value, bool) {
	section, key := splitName(name)
	if key == "" {
		return Value{}, false
	}

	v, ok := s.lookup(section, key)
	if !ok || v.IsEmpty() {
		return Value{}, false
	}
	return v, true
}

// GetDefault is [Store.Get] returning def for absent values.
func (s *Store) GetDefault(name string, def Value) Value {
	if v, ok := s.Get(name); ok {
		return v
	}
	return def
}

// String returns the textual form of the option, or def when it is absent.
func (s *Store) String(name, def string) string {
	if v, ok := s.Get(name); ok {
		return v.String()
	}
	return def
}

// Int parses the option as a base-10 integer. Absent and unparsable values
// yield def; the latter is logged.
func (s *Store) Int(name string, def int) int {
	v, ok := s.Get(name)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(v.String()))
	if err != nil {
		section, key := splitName(name)
		s.warnInvalid(section, key, err)
		return def
	}
	return n
}

// Bool resolves the option with def as the fallback for absent or empty
// values. Unrecognised values are logged and yield def.
func (s *Store) Bool(name string, def bool) bool {
	v := s.GetDefault(name, Bool(def))

	b, err := ResolveBool(v, def)
	if err != nil {
		section, key := splitName(name)
		s.warnInvalid(section, key, err)
		return def
	}
	return b
}

func (s *Store) warnInvalid(section, key string, err error) {
	s.logger.Warn().
		Err(err).
		Str("option", section+"."+key).
		Msg("incorrect option value")
}
