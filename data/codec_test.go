package data_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/cronies/data"
)

func TestDecodeJSONKeepsOrder(t *testing.T) {
	v, err := data.DecodeJSON([]byte(`{"z": 1, "a": [1.5, "x", null, true], "m": {"k": 2}}`))
	require.NoError(t, err)

	want := data.MapOf(
		"z", 1,
		"a", []any{1.5, "x", nil, true},
		"m", data.MapOf("k", 2),
	)
	assert.Equal(t, want, v)
}

func TestDecodeJSONErrors(t *testing.T) {
	_, err := data.DecodeJSON([]byte(`{"a": }`))
	assert.Error(t, err)

	_, err = data.DecodeJSON([]byte(`[1] [2]`))
	assert.Error(t, err)

	v, err := data.DecodeJSON([]byte(``))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeYAML(t *testing.T) {
	src := `
b: 2
a:
  - 1
  - 2.5
  - text
when: 2016-07-09
`
	v, err := data.DecodeYAML([]byte(src))
	require.NoError(t, err)

	m, ok := v.(*data.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a", "when"}, m.Keys())
	assert.Equal(t, []any{1, 2.5, "text"}, data.Get(m, "a"))

	when, ok := data.Get(m, "when").(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2016, when.Year())
}

func TestDecodeYAMLAlias(t *testing.T) {
	v, err := data.DecodeYAML([]byte("base: &b [1, 2]\ncopy: *b\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, data.Get(v, "copy"))
}

func TestMapMarshalJSON(t *testing.T) {
	m := data.MapOf("b", 1, "a", data.MapOf("d", []any{1, "x"}, "c", nil))
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":{"d":[1,"x"],"c":null}}`, string(b))
}

func TestMapMarshalYAML(t *testing.T) {
	m := data.MapOf("b", 1, "a", []any{"x", data.MapOf("z", true, "y", false)})
	b, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "b: 1\na:\n    - x\n    - z: true\n      y: false\n", string(b))
}

func TestToNative(t *testing.T) {
	m := data.MapOf("a", []any{data.MapOf("b", 1)})
	assert.Equal(t, map[string]any{"a": []any{map[string]any{"b": 1}}}, data.ToNative(m))
}

func TestDigest(t *testing.T) {
	a, err := data.Digest(data.MapOf("a", 1, "b", 2))
	require.NoError(t, err)
	b, err := data.Digest(data.MapOf("a", 1, "b", 2))
	require.NoError(t, err)
	c, err := data.Digest(data.MapOf("b", 2, "a", 1))
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c, "key order is part of the digest")
}
