package strjson_test

import (
	"testing"

	"github.com/alxarch/strjson"
)

func TestSafeUnescape(t *testing.T) {
	test := func(escaped, want string) {
		t.Helper()
		got, err := strjson.SafeUnescape(escaped)
		if err != nil {
			t.Errorf("SafeUnescape(%q) error: %s", escaped, err)
			return
		}
		if got != want {
			t.Errorf("SafeUnescape(%q):\nexpect: %q\nactual: %q", escaped, want, got)
		}
	}
	test("", "")
	test("abc", "abc")
	test("abc \\\\ \\\"", "abc \\ \"")
	test("abc \\n \\t \\r", "abc \n \t \r")
	test("a\\/b", "a/b")
	test("goo\\f!", "goo\f!")
	test("€ \\u20AC", "€ €")
	test("𐐷 \\uD801\\uDC37", "𐐷 𐐷")
	test("\\uD834\\uDD1E", "𝄞")

	// Control characters stay escaped.
	test("12x\\b34", "12x\\b34")
	test(
		"\\u0000 | \\u001f | \\u0020 | \\u007e | \\u007f | \\u0080 | \\u009F | \\u00a0",
		"\\u0000 | \\u001f | \x20 | \x7e | \\u007f | \\u0080 | \\u009F |  ",
	)

	// Raw control characters get escaped, uppercase hex.
	test("12  34", "12 \\u0080 34")
	test("ab", "a\\u009Fb")
	test("x\x1fy", "x\\u001Fy")
}

func TestUnsafeUnescape(t *testing.T) {
	test := func(escaped, want string) {
		t.Helper()
		got, err := strjson.UnsafeUnescape(escaped)
		if err != nil {
			t.Errorf("UnsafeUnescape(%q) error: %s", escaped, err)
			return
		}
		if got != want {
			t.Errorf("UnsafeUnescape(%q):\nexpect: %q\nactual: %q", escaped, want, got)
		}
	}
	test("abc", "abc")
	test("12x\\b34", "12x\b34")
	test("goo\\u0002!", "goo\x02!")
	test(
		"\\u0000 | \\u001f | \\u0020 | \\u007e | \\u007f | \\u0080 | \\u009F | \\u00a0",
		"\x00 | \x1f | \x20 | \x7e | \x7f |  |  |  ",
	)
	test("12  34", "12  34")
	test("𐐷 \\uD801\\uDC37", "𐐷 𐐷")
}

func TestUnescapeOrOriginal(t *testing.T) {
	test := func(escaped, want string) {
		t.Helper()
		if got := strjson.UnescapeOrOriginal(escaped); got != want {
			t.Errorf("UnescapeOrOriginal(%q):\nexpect: %q\nactual: %q", escaped, want, got)
		}
	}
	test("abc \\u20AC", "abc €")
	test("goo\\u0002!", "goo\\u0002!")
	// Failures hand back the input untouched.
	test("\\uDC37", "\\uDC37")
	test("\\uD801 foo", "\\uD801 foo")
	test("\\uD801", "\\uD801")
}
