package pathx

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// diagSanitizer strips control characters (anything other than a
// printable rune, space, or tab) out of expression text before it is
// embedded in a diagnostic message, so a pasted expression containing a
// stray NUL or escape sequence can't corrupt a terminal or log line.
var diagSanitizer = runes.Remove(runes.Predicate(func(r rune) bool {
	return r != '\t' && !unicode.IsPrint(r)
}))

// sanitizeSnippet returns a control-character-free copy of s for
// inclusion in an Error's diagnostic text. On transform failure (which
// runes.Remove never actually produces for well-formed UTF-8, but
// transform.String always returns an error value to check) it falls
// back to returning s unchanged rather than dropping the diagnostic.
func sanitizeSnippet(s string) string {
	out, _, err := transform.String(diagSanitizer, s)
	if err != nil {
		return s
	}
	return out
}

// snippetAround returns up to radius bytes of sanitized context on each
// side of pos within text, for use in a human-facing error message. It
// cuts at the raw byte offsets pos-radius and pos+radius, which can fall
// inside a multi-byte rune; sanitizeSnippet then turns the cut-off bytes
// into U+FFFD.
func snippetAround(text string, pos, radius int) string {
	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + radius
	if end > len(text) {
		end = len(text)
	}
	return sanitizeSnippet(text[start:end])
}
