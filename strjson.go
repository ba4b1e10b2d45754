// Package strjson converts between the escaped content of JSON string
// literals and their logical values.
//
// The unescape functions take the text between the quotes of a JSON
// string that is already known to be syntactically valid; only Unicode
// surrogate pairing is verified here. The escape functions perform the
// inverse transform, and MapRange translates byte ranges between the
// two coordinate systems.
package strjson

import "strings"

// Flags track which form a String value currently holds.
type Flags uint8

const (
	// FlagEscaped marks text in escaped (JSON source) form.
	FlagEscaped Flags = 1 << iota
	// FlagSafe marks text with no backslash escapes, where the escaped
	// and logical forms coincide.
	FlagSafe
)

func (f Flags) IsEscaped() bool {
	return f&FlagEscaped != 0
}
func (f Flags) IsSafe() bool {
	return f&FlagSafe != 0
}

// String is a JSON string value that remembers whether it currently
// holds escaped or logical text, so that converting to a form it is
// already in costs nothing.
type String struct {
	Value string
	flags Flags
}

// FromJSON wraps the escaped content of a JSON string literal.
func FromJSON(s string) String {
	if strings.IndexByte(s, '\\') == -1 {
		return String{Value: s, flags: FlagEscaped | FlagSafe}
	}
	return String{Value: s, flags: FlagEscaped}
}

// FromString wraps a logical (unescaped) value.
func FromString(s string) String {
	return String{Value: s}
}

// FromSafeString wraps a value the caller knows needs no escaping.
func FromSafeString(s string) String {
	return String{Value: s, flags: FlagSafe}
}

// Flags returns the state flags of s.
func (s String) Flags() Flags {
	return s.flags
}

// String returns the logical value, falling back to the raw text when
// it cannot be unescaped.
func (s String) String() string {
	if !s.flags.IsEscaped() || s.flags.IsSafe() {
		return s.Value
	}
	return UnescapeOrOriginal(s.Value)
}

// Unescape converts s to its logical form, keeping control characters
// escaped. Escaped text that fails to unescape is returned unchanged
// along with the error.
func (s String) Unescape() (String, error) {
	if !s.flags.IsEscaped() {
		return s, nil
	}
	if s.flags.IsSafe() {
		return String{Value: s.Value, flags: s.flags &^ FlagEscaped}, nil
	}
	u, err := SafeUnescape(s.Value)
	if err != nil {
		return s, err
	}
	return String{Value: u}, nil
}

// Escape converts s to escaped form.
func (s String) Escape() String {
	if s.flags.IsEscaped() || s.flags.IsSafe() {
		return String{Value: s.Value, flags: s.flags | FlagEscaped}
	}
	e := Escape(s.Value)
	flags := FlagEscaped
	if strings.IndexByte(e, '\\') == -1 {
		flags |= FlagSafe
	}
	return String{Value: e, flags: flags}
}
