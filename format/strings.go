package format

import (
	"regexp"
	"strings"
)

var asciiLetters = regexp.MustCompile(`[a-zA-Z]+`)

// CharacterRemover returns a function that deletes every occurrence of any
// rune in chars, ignoring case, and trims surrounding whitespace from the
// result. An empty chars removes ASCII letters.
//
//	CharacterRemover("한")("한글 대한항공") // "글 대항공"
func CharacterRemover(chars string) func(string) string {
	re := asciiLetters
	if chars != "" {
		var class strings.Builder
		for _, r := range chars {
			if r < 0x80 && !isWordOrSpace(r) {
				class.WriteByte('\\')
			}
			class.WriteRune(r)
		}
		re = regexp.MustCompile(`(?i)[` + class.String() + `]+`)
	}
	return func(s string) string {
		return strings.TrimSpace(re.ReplaceAllString(s, ""))
	}
}

func isWordOrSpace(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
		return true
	}
	return false
}

// AppendStringAt inserts insert into s before each rune offset in indexes.
// Offsets refer to the original string and should be ascending; offsets
// past the end of s (or negative) are dropped.
//
//	AppendStringAt("20160709", "-", 4, 6) // "2016-07-09"
func AppendStringAt(s, insert string, indexes ...int) string {
	runes := []rune(s)
	n := len(runes)
	ins := []rune(insert)
	out := make([]rune, 0, n+len(ins)*len(indexes))
	prev := 0
	for _, idx := range indexes {
		if idx < 0 || idx > n || idx < prev {
			continue
		}
		out = append(out, runes[prev:idx]...)
		out = append(out, ins...)
		prev = idx
	}
	out = append(out, runes[prev:]...)
	return string(out)
}
