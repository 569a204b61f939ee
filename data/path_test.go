package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/cronies/data"
)

func userDoc() *data.Map {
	return data.MapOf(
		"user", data.MapOf(
			"name", "Alice",
			"scores", []any{3, 9, 4},
		),
	)
}

func TestGet(t *testing.T) {
	doc := userDoc()
	assert.Equal(t, "Alice", data.Get(doc, "user.name"))
	assert.Equal(t, 9, data.Get(doc, "user.scores.1"))
	assert.Equal(t, doc, data.Get(doc, ""))
	assert.Nil(t, data.Get(doc, "user.missing"))
	assert.Equal(t, "def", data.Get(doc, "user.scores.7", "def"))
	assert.Equal(t, "def", data.Get(doc, "user.name.first", "def"))
}

func TestHas(t *testing.T) {
	doc := userDoc()
	assert.True(t, data.Has(doc, "user.scores.2"))
	assert.False(t, data.Has(doc, "user.scores.-1"))
	assert.False(t, data.Has(doc, "nope"))
}

func TestSet(t *testing.T) {
	doc := userDoc()
	require.NoError(t, data.Set(doc, "user.address.city", "London"))
	assert.Equal(t, "London", data.Get(doc, "user.address.city"))

	require.NoError(t, data.Set(doc, "user.scores.0", 30))
	assert.Equal(t, 30, data.Get(doc, "user.scores.0"))

	assert.ErrorIs(t, data.Set(doc, "user.scores.5", 1), data.ErrInvalidPath)
	assert.ErrorIs(t, data.Set(doc, "", 1), data.ErrInvalidPath)
	assert.ErrorIs(t, data.Set(5, "a", 1), data.ErrInvalidPath)
}

func TestDot(t *testing.T) {
	flat := data.Dot(userDoc())
	assert.Equal(t, []string{"user.name", "user.scores.0", "user.scores.1", "user.scores.2"}, flat.Keys())
	v, _ := flat.Get("user.scores.1")
	assert.Equal(t, 9, v)
}
