// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"sort"
	"strings"
)

// Tree is a nested section → key → value map. Section and key names are
// stored lower-cased; use [Tree.Set] to keep that invariant.
type Tree map[string]map[string]Value

// Set stores v under (section, key), lower-casing both names.
func (t Tree) Set(section, key string, v Value) {
	section = strings.ToLower(section)
	key = strings.ToLower(key)

	keys, ok := t[section]
	if !ok {
		keys = make(map[string]Value)
		t[section] = keys
	}
	keys[key] = v
}

// Lookup returns the value stored under (section, key). Names must already be
// lower-cased.
func (t Tree) Lookup(section, key string) (Value, bool) {
	keys, ok := t[section]
	if !ok {
		return Value{}, false
	}
	v, ok := keys[key]
	return v, ok
}

// Clone returns a deep copy of t with normalized names.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for section, keys := range t {
		for key, v := range keys {
			out.Set(section, key, v)
		}
	}
	return out
}

// Sections returns the section names of t in lexical order.
func (t Tree) Sections() []string {
	sections := make([]string, 0, len(t))
	for section := range t {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}

// Keys returns the option keys of section in lexical order.
func (t Tree) Keys(section string) []string {
	keys := make([]string, 0, len(t[section]))
	for key := range t[section] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MergeDefaults copies every (section, key) of defaults that dst does not have
// yet. Existing entries of dst are never touched, so running it twice leaves
// dst unchanged.
func MergeDefaults(dst, defaults Tree) {
	for section, keys := range defaults {
		for key, v := range keys {
			if _, ok := dst.Lookup(strings.ToLower(section), strings.ToLower(key)); ok {
				continue
			}
			dst.Set(section, key, v)
		}
	}
}

// Overlay copies every entry of src into dst, replacing what dst holds.
// It is used to stack operator sources where the later one wins.
func Overlay(dst, src Tree) {
	for section, keys := range src {
		for key, v := range keys {
			dst.Set(section, key, v)
		}
	}
}
