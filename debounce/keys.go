package debounce

// Key codes follow the conventional numeric scheme where everything below
// the digit row is navigation or a modifier.
const (
	KeyBackspace = 8
	KeyEnter     = 13
	KeySpace     = 32
	KeyLeft      = 37
	KeyUp        = 38
	KeyRight     = 39
	KeyDown      = 40

	// contentThreshold is the first code that produces content on its own.
	contentThreshold = 48
)

// Accepts reports whether a key code affects the input's content. Codes below
// the content threshold are navigation, modifiers or function keys, except
// Backspace and Space which change the value and are accepted.
func Accepts(code int) bool {
	if code == KeyBackspace || code == KeySpace {
		return true
	}
	return code >= contentThreshold
}
