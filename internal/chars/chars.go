// Package chars classifies the Unicode whitespace and format characters the
// parser treats as whitespace, plus the visible stand-in glyphs used by
// diagnostic output.
package chars

import "strings"

// IsSpace reports whether r is a whitespace or zero-width format character.
// The set is wider than unicode.IsSpace: it includes the zero-width
// space/joiner family and the word joiner, which markup input uses as
// invisible separators.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x0085, // next line
		0x00A0, // no-break space
		0x1680, // ogham space mark
		0x180E, // mongolian vowel separator
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005,
		0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x200B, // zero width space
		0x200C, // zero width non-joiner
		0x200D, // zero width joiner
		0x2028, // line separator
		0x2029, // paragraph separator
		0x202F, // narrow no-break space
		0x205F, // medium mathematical space
		0x2060, // word joiner
		0x3000, // ideographic space
		0xFEFF: // zero width no-break space
		return true
	}
	return false
}

// IsSymbol reports whether r is a visible whitespace stand-in: a control
// picture or a glyph conventionally used to render whitespace in diagnostic
// views. These are never matched by the parser itself.
func IsSymbol(r rune) bool {
	switch r {
	case 0x00B7, // middle dot
		0x21B5, // downwards arrow with corner leftwards
		0x237D, // shouldered open box
		0x2409, // symbol for horizontal tabulation
		0x240A, // symbol for line feed
		0x240B, // symbol for vertical tabulation
		0x240C, // symbol for form feed
		0x240D, // symbol for carriage return
		0x2420, // symbol for space
		0x2422, // blank symbol
		0x2423, // open box
		0x2424: // symbol for newline
		return true
	}
	return false
}

// Is reports whether r is whitespace, optionally including the visible
// stand-in glyphs.
func Is(r rune, includeSymbols bool) bool {
	return IsSpace(r) || (includeSymbols && IsSymbol(r))
}

// Collapse replaces each maximal run of whitespace in s with a single space.
// Idempotent.
func Collapse(s string, includeSymbols bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if Is(r, includeSymbols) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// Trim strips leading and trailing whitespace from s.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsBlank reports whether s is empty or entirely whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !IsSpace(r) {
			return false
		}
	}
	return true
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}
