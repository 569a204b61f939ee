package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/cronies/format"
)

func TestCharacterRemover(t *testing.T) {
	tests := []struct {
		chars, in, want string
	}{
		{"한", "한글 대한항공", "글 대항공"},
		{"ab", "AbcaB", "c"},
		{".-", " 1.2-3 ", "123"},
		{"]^\\", `a]b^c\d`, "abcd"},
		{"", "abc123XYZ", "123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, format.CharacterRemover(tt.chars)(tt.in), "remove %q from %q", tt.chars, tt.in)
	}
}

func TestAppendStringAt(t *testing.T) {
	assert.Equal(t, "2016-07-09", format.AppendStringAt("20160709", "-", 4, 6))
	assert.Equal(t, "-ab-", format.AppendStringAt("ab", "-", 0, 2))
	assert.Equal(t, "ab", format.AppendStringAt("ab", "-", 3, -1))
	assert.Equal(t, "가:나", format.AppendStringAt("가나", ":", 1))
}
