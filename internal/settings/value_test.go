// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_ZeroIsEmptyString(t *testing.T) {
	var v Value
	assert.Equal(t, KindString, v.Kind())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, "", v.String())
}

func TestValue_BoolIsNeverEmpty(t *testing.T) {
	assert.False(t, Bool(false).IsEmpty())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, true, Bool(true).Interface())
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var got map[string]Value
	err := json.Unmarshal([]byte(`{"a":"text","b":true,"c":25,"d":null}`), &got)
	require.NoError(t, err)

	assert.Equal(t, String("text"), got["a"])
	assert.Equal(t, Bool(true), got["b"])
	assert.Equal(t, String("25"), got["c"])
	assert.Equal(t, String(""), got["d"])
}

func TestValue_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"nested":1}`), &v)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestValue_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Value{"a": String("1"), "b": Bool(false)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"1","b":false}`, string(out))
}

func TestValue_UnmarshalYAML(t *testing.T) {
	src := `
a: text
b: true
c: 0755
d: "true"
e:
`
	var got map[string]Value
	require.NoError(t, yaml.Unmarshal([]byte(src), &got))

	assert.Equal(t, String("text"), got["a"])
	assert.Equal(t, Bool(true), got["b"])
	assert.Equal(t, String("0755"), got["c"])
	assert.Equal(t, String("true"), got["d"], "quoted scalars stay strings")
	assert.Equal(t, String(""), got["e"])
}

func TestValue_UnmarshalYAML_RejectsSequences(t *testing.T) {
	var got map[string]Value
	err := yaml.Unmarshal([]byte("a: [1, 2]\n"), &got)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
