package strjson

const (
	surrogateHighMin = 0xD800
	surrogateHighMax = 0xDBFF
	surrogateLowMin  = 0xDC00
	surrogateLowMax  = 0xDFFF
	surrogateSelf    = 0x10000 // first codepoint outside the BMP
)

type codepointKind uint8

const (
	codepointChar codepointKind = iota
	codepointHighSurrogate
	codepointLowSurrogate
)

// decodeCodepoint classifies a 16-bit escape value as a standalone
// character or half of a surrogate pair. Surrogate payloads have the
// range offset removed.
func decodeCodepoint(cp uint16) (kind codepointKind, v rune) {
	switch {
	case surrogateHighMin <= cp && cp <= surrogateHighMax:
		return codepointHighSurrogate, rune(cp - surrogateHighMin)
	case surrogateLowMin <= cp && cp <= surrogateLowMax:
		return codepointLowSurrogate, rune(cp - surrogateLowMin)
	default:
		return codepointChar, rune(cp)
	}
}

// parseCodepoint reads four hex digits into a UTF-16 code unit.
func parseCodepoint(s string) (cp uint16, ok bool) {
	_ = s[3]
	for i := 0; i < 4; i++ {
		x := fromHex(s[i])
		if x == 0xff {
			return 0, false
		}
		cp = cp<<4 | uint16(x)
	}
	return cp, true
}
