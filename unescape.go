package strjson

import (
	"strings"
	"unicode/utf8"
)

// SafeUnescape decodes the content of a JSON string literal but keeps
// Unicode control characters in their \u00XX escaped form, so the
// result is safe to print or to embed where raw control bytes are not
// welcome. Control characters that appear raw in the input are escaped
// on the way out.
func SafeUnescape(s string) (string, error) {
	return unescape(s, true)
}

// UnsafeUnescape fully decodes the content of a JSON string literal,
// control characters included.
func UnsafeUnescape(s string) (string, error) {
	return unescape(s, false)
}

// UnescapeOrOriginal decodes like SafeUnescape but returns the input
// unchanged when it cannot be unescaped.
func UnescapeOrOriginal(s string) string {
	u, err := unescape(s, true)
	if err != nil {
		return s
	}
	return u
}

// unescape expands the backslash escapes of a syntactically valid JSON
// string in a single left-to-right scan.
//
// The only escapes expected after a '\' are the single character ones
// ("\/bfnrt) and 4-digit unicode escapes encoding UTF-16 code units,
// where codepoints outside the BMP appear as a surrogate pair.
//
// pos counts consumed characters of the input. It is 1-based and always
// points at the next unconsumed character, which makes it the position
// reported by errors.
func unescape(s string, escapeControlChars bool) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	pos := 1
	for i := 0; i < len(s); {
		if c := s[i]; c != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			i += size
			pos++
			if escapeControlChars && isControl(r) {
				b.WriteString(`\u00`)
				b.WriteByte(toHexUpper(byte(r) >> 4))
				b.WriteByte(toHexUpper(byte(r)))
			} else {
				b.WriteRune(r)
			}
			continue
		}
		i++
		pos++
		if i == len(s) {
			return "", &UnescapeError{kind: UnexpectedEOF, pos: pos}
		}
		c := s[i]
		i++
		pos++
		switch c {
		case '"', '\\', '/':
			b.WriteByte(c)
		case 'b':
			// 0x08 is itself a control character and \b is already its
			// minimal escape.
			if escapeControlChars {
				b.WriteString(`\b`)
			} else {
				b.WriteByte(0x08)
			}
		case 'f':
			b.WriteByte(0x0C)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if len(s)-i < 4 {
				return "", &UnescapeError{kind: UnexpectedEOF, pos: pos}
			}
			hex := s[i : i+4]
			i += 4
			pos += 4
			cp, ok := parseCodepoint(hex)
			if !ok {
				return "", &UnescapeError{kind: InvalidEscape, pos: pos, text: "u" + hex}
			}
			switch kind, v := decodeCodepoint(cp); kind {
			case codepointChar:
				if escapeControlChars && isControl(v) {
					// Re-emit the original escape verbatim, hex digit
					// case included, so safe unescaping is idempotent.
					b.WriteString(`\u`)
					b.WriteString(hex)
				} else {
					b.WriteRune(v)
				}
			case codepointLowSurrogate:
				return "", &UnescapeError{kind: UnexpectedLowSurrogate, pos: pos - 6, text: hex}
			default:
				// A high surrogate must pair with a low surrogate escape.
				if len(s)-i < 2 || s[i] != '\\' || s[i+1] != 'u' {
					return "", &UnescapeError{kind: UnmatchedHighSurrogate, pos: pos, text: hex}
				}
				i += 2
				pos += 2
				if len(s)-i < 4 {
					return "", &UnescapeError{kind: UnexpectedEOF, pos: pos}
				}
				hex2 := s[i : i+4]
				i += 4
				pos += 4
				cp2, ok := parseCodepoint(hex2)
				if !ok {
					return "", &UnescapeError{kind: InvalidEscape, pos: pos, text: "u" + hex2}
				}
				kind2, ls := decodeCodepoint(cp2)
				if kind2 != codepointLowSurrogate {
					return "", &UnescapeError{kind: UnmatchedHighSurrogate, pos: pos, text: hex}
				}
				b.WriteRune(v*0x400 + ls + surrogateSelf)
			}
		default:
			return "", &UnescapeError{kind: InvalidEscape, pos: pos, text: string(c)}
		}
	}
	return b.String(), nil
}

// isControl reports whether r is a C0 or C1 control character
// (U+0000..U+001F, U+007F..U+009F).
func isControl(r rune) bool {
	return r <= 0x1F || (0x7F <= r && r <= 0x9F)
}
