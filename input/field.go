// Package input binds debouncers to concrete text inputs. A Field models one
// input's content, a Binding joins a Field to a Debouncer and a callback,
// and a Registry resolves names to live Fields, fanning a single bind
// request out across every match and deferring it for matches that do not
// exist yet.
package input

import (
	"unicode"

	"github.com/Gleipnir-Technology/lull/debounce"
)

// Field is one text input: a name it can be bound by, its content, and a
// focus flag. Fields are mutated from the host's event loop only and carry
// no locking of their own.
type Field struct {
	name    string
	value   []rune
	focused bool
}

func NewField(name string) *Field {
	return &Field{name: name}
}

func (f *Field) Name() string  { return f.name }
func (f *Field) Value() string { return string(f.value) }
func (f *Field) Focused() bool { return f.focused }

func (f *Field) Focus() { f.focused = true }
func (f *Field) Blur()  { f.focused = false }

// Type appends a printable rune to the content.
func (f *Field) Type(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	f.value = append(f.value, r)
}

// Backspace removes the last rune, if any.
func (f *Field) Backspace() {
	if len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
	}
}

func (f *Field) SetValue(s string) {
	f.value = []rune(s)
}

// Edit applies the content effect of a key code to the field: Backspace
// deletes, a printable rune inserts, anything else leaves the value alone.
func (f *Field) Edit(code int, r rune) {
	switch {
	case code == debounce.KeyBackspace:
		f.Backspace()
	case r != 0:
		f.Type(r)
	}
}
