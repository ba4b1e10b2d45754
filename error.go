package strjson

import "fmt"

// ErrorKind discriminates unescape failures.
type ErrorKind uint8

const (
	// UnexpectedLowSurrogate signifies a low surrogate escape with no
	// preceding high surrogate.
	UnexpectedLowSurrogate ErrorKind = iota
	// UnmatchedHighSurrogate signifies a high surrogate escape not
	// immediately followed by a valid low surrogate escape.
	UnmatchedHighSurrogate
	// InvalidEscape signifies an escape letter outside the recognized
	// set or a non-hex digit in a unicode escape.
	InvalidEscape
	// UnexpectedEOF signifies an escape truncated by the end of input.
	UnexpectedEOF
)

// UnescapeError signifies invalid escape content in a JSON string.
type UnescapeError struct {
	kind ErrorKind
	pos  int
	text string
}

// Kind returns the kind of failure.
func (e *UnescapeError) Kind() ErrorKind {
	return e.kind
}

// Pos returns the 1-based position of the next unconsumed character at
// the moment the error occurred, counted in characters of the escaped
// input.
func (e *UnescapeError) Pos() int {
	return e.pos
}

func (e *UnescapeError) Error() string {
	switch e.kind {
	case UnexpectedLowSurrogate:
		return fmt.Sprintf("unescaping error at char %d: unexpected low surrogate \"\\u%s\"", e.pos, e.text)
	case UnmatchedHighSurrogate:
		return fmt.Sprintf("unescaping error at char %d: high surrogate \"\\u%s\" not followed by low surrogate", e.pos, e.text)
	case UnexpectedEOF:
		return fmt.Sprintf("unescaping error at char %d: unexpected end of input", e.pos)
	default:
		return fmt.Sprintf("unescaping error at char %d: invalid escape %q", e.pos, `\`+e.text)
	}
}
