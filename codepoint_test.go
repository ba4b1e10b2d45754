package strjson

import "testing"

func TestDecodeCodepoint(t *testing.T) {
	for _, tc := range []struct {
		cp   uint16
		kind codepointKind
		v    rune
	}{
		{0x0041, codepointChar, 'A'},
		{0x20AC, codepointChar, '€'},
		{0xD7FF, codepointChar, 0xD7FF},
		{0xD800, codepointHighSurrogate, 0},
		{0xD801, codepointHighSurrogate, 1},
		{0xDBFF, codepointHighSurrogate, 0x3FF},
		{0xDC00, codepointLowSurrogate, 0},
		{0xDC37, codepointLowSurrogate, 0x37},
		{0xDFFF, codepointLowSurrogate, 0x3FF},
		{0xE000, codepointChar, 0xE000},
		{0xFFFF, codepointChar, 0xFFFF},
	} {
		if kind, v := decodeCodepoint(tc.cp); kind != tc.kind || v != tc.v {
			t.Errorf("decodeCodepoint(%#04x) = (%d, %#x), expect (%d, %#x)", tc.cp, kind, v, tc.kind, tc.v)
		}
	}
}

func TestSurrogatePairReconstruction(t *testing.T) {
	// U+10437 is encoded as the pair D801 DC37.
	_, hs := decodeCodepoint(0xD801)
	kind, ls := decodeCodepoint(0xDC37)
	if kind != codepointLowSurrogate {
		t.Fatalf("expected low surrogate, got %d", kind)
	}
	if r := hs*0x400 + ls + surrogateSelf; r != 0x10437 {
		t.Errorf("reconstructed %#x, expect 0x10437", r)
	}
}

func TestParseCodepoint(t *testing.T) {
	for s, want := range map[string]uint16{
		"0000": 0x0000,
		"20AC": 0x20AC,
		"20ac": 0x20AC,
		"dc37": 0xDC37,
		"FFFF": 0xFFFF,
	} {
		cp, ok := parseCodepoint(s)
		if !ok || cp != want {
			t.Errorf("parseCodepoint(%q) = (%#04x, %v), expect (%#04x, true)", s, cp, ok, want)
		}
	}
	for _, s := range []string{"12G4", "12 4", "xyzw", "000/"} {
		if _, ok := parseCodepoint(s); ok {
			t.Errorf("parseCodepoint(%q) should fail", s)
		}
	}
}
