package strjson

import "unicode/utf8"

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// MapRange translates a byte range expressed in escaped coordinates
// into the tightest enclosing character-aligned ranges in both
// coordinate systems. unescaped is the decoded text; the escaped
// coordinates are those of Escape(unescaped). The returned ranges
// never split a multi-byte character or a surrogate pair escape.
func MapRange(unescaped string, escaped Range) (u Range, e Range) {
	i := 0
	// Skip characters whose escaped span ends at or before the start
	// of the requested range.
	for i < len(unescaped) {
		r, size := utf8.DecodeRuneInString(unescaped[i:])
		n := escapedRuneLen(r)
		if e.Start+n > escaped.Start {
			break
		}
		i += size
		e.Start += n
	}
	u.Start = i
	u.End, e.End = u.Start, e.Start
	// Include characters until the accumulated escaped offset covers
	// the end of the requested range.
	for i < len(unescaped) && e.End < escaped.End {
		r, size := utf8.DecodeRuneInString(unescaped[i:])
		i += size
		e.End += escapedRuneLen(r)
	}
	u.End = i
	return u, e
}
