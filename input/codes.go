package input

import (
	"unicode"

	"github.com/Gleipnir-Technology/lull/debounce"
)

// CodeForRune maps a typed rune to the numeric key code fed to the filter.
// Letters report their uppercase code, digits themselves, and space its own
// code. Remaining printable runes sit below the digit row numerically but
// still produce content, so they share the first content code.
func CodeForRune(r rune) int {
	switch {
	case r == ' ':
		return debounce.KeySpace
	case unicode.IsLetter(r):
		return int(unicode.ToUpper(r))
	case r >= '0':
		return int(r)
	default:
		return '0'
	}
}
