package strjson

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Escape returns the minimal JSON-escaped form of s: short escapes for
// the control characters that have one and for '"' and '\', ASCII
// printable characters verbatim, and \uxxxx UTF-16 escapes for
// everything else. Codepoints outside the BMP become a surrogate pair
// of escapes.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if ' ' <= r && r <= '~' {
				b.WriteByte(byte(r))
			} else {
				escapeUTF16(&b, r, false)
			}
		}
	}
	return b.String()
}

// EscapeForRegex escapes non-ASCII characters as \\uxxxx with a
// doubled backslash, for embedding inside regular expression literals
// where a single backslash already carries meaning. ASCII characters
// pass through untouched.
func EscapeForRegex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
		} else {
			escapeUTF16(&b, r, true)
		}
	}
	return b.String()
}

// escapeUTF16 writes r as one or two 4-digit UTF-16 escapes.
func escapeUTF16(b *strings.Builder, r rune, double bool) {
	if r < surrogateSelf {
		escapeCodeUnit(b, uint16(r), double)
		return
	}
	r1, r2 := utf16.EncodeRune(r)
	escapeCodeUnit(b, uint16(r1), double)
	escapeCodeUnit(b, uint16(r2), double)
}

func escapeCodeUnit(b *strings.Builder, u uint16, double bool) {
	if double {
		b.WriteByte('\\')
	}
	b.WriteByte('\\')
	b.WriteByte('u')
	b.WriteByte(toHex(byte(u >> 12)))
	b.WriteByte(toHex(byte(u >> 8)))
	b.WriteByte(toHex(byte(u >> 4)))
	b.WriteByte(toHex(byte(u)))
}

// escapedRuneLen returns len(Escape(string(r))) without building the
// escape.
func escapedRuneLen(r rune) int {
	switch r {
	case '\b', '\f', '\n', '\r', '\t', '"', '\\':
		return 2
	}
	switch {
	case ' ' <= r && r <= '~':
		return 1
	case r < surrogateSelf:
		return 6
	default:
		return 12
	}
}
