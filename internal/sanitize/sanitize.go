// Package sanitize turns free-form dictionary text into content that can be
// embedded in a generated string literal.
package sanitize

import "strings"

// Literal removes newlines, replaces double quotes with single quotes and
// drops every byte outside printable ASCII. An empty (absent) input yields
// an empty string.
func Literal(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '\n':
		case c == '"':
			b.WriteByte('\'')
		case c >= 0x20 && c <= 0x7e:
			b.WriteByte(c)
		}
	}

	return b.String()
}
