package mdtext

import (
	"strings"
	"unicode"
)

// SpaceClass is a regular expression character class matching the same
// characters as IsSpace. Go's \s only covers ASCII whitespace, which would
// miss the ideographic space common in CJK documents.
const SpaceClass = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// IsSpace reports whether r is whitespace: Unicode White_Space plus the
// ASCII information separators U+001C through U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || (r >= 0x1c && r <= 0x1f)
}

// TrimSpace removes leading and trailing IsSpace characters.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
