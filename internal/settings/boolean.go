// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "strings"

var (
	truthy = map[string]struct{}{
		"1": {}, "y": {}, "on": {}, "yes": {}, "true": {}, "tak": {}, "t": {}, "enabled": {},
	}
	falsy = map[string]struct{}{
		"0": {}, "n": {}, "no": {}, "off": {}, "false": {}, "nie": {}, "disabled": {},
	}
)

// ResolveBool narrows a raw option value to a boolean.
//
// Booleans are returned unchanged and the empty string yields fallback.
// Strings are matched case-insensitively against the truthy set
// (1, y, on, yes, true, tak, t, enabled) and the falsy set
// (0, n, no, off, false, nie, disabled). Anything else returns false together
// with an [*InvalidValueError]; callers decide whether to log it or pass it on.
func ResolveBool(v Value, fallback bool) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}

	if v.IsEmpty() {
		return fallback, nil
	}

	s := strings.ToLower(v.String())
	if _, ok := truthy[s]; ok {
		return true, nil
	}
	if _, ok := falsy[s]; ok {
		return false, nil
	}

	return false, &InvalidValueError{Value: v.String()}
}
