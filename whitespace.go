package flexparse

import "github.com/jacoblockett/flex-parse/internal/chars"

// IsWhitespace reports whether r is one of the Unicode whitespace or
// zero-width format characters the parser treats as whitespace. When
// includeSymbols is true it additionally matches the visible whitespace
// stand-ins (middle dot, open box, control pictures) used by diagnostic
// output; the parser itself never matches those.
func IsWhitespace(r rune, includeSymbols bool) bool {
	return chars.Is(r, includeSymbols)
}

// CollapseWhitespace replaces every maximal run of whitespace in s with a
// single U+0020 space. Non-whitespace characters pass through unchanged and
// the function is idempotent.
func CollapseWhitespace(s string, includeSymbols bool) string {
	return chars.Collapse(s, includeSymbols)
}
