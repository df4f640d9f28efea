package input

import (
	"time"

	"github.com/Gleipnir-Technology/lull/debounce"
)

// Binding joins one Field to one Debouncer and a caller callback. The blur
// path is only wired when the configuration is adaptive, since a fixed-delay
// subscription keeps no burst state worth resetting.
type Binding struct {
	field    *Field
	deb      *debounce.Debouncer
	adaptive bool
	detach   func(*Binding)
	disposed bool
}

func newBinding(f *Field, cfg debounce.Config, fn func(debounce.Event), detach func(*Binding), opts ...debounce.Option) *Binding {
	return &Binding{
		field:    f,
		deb:      debounce.New(cfg, f.Name(), fn, opts...),
		adaptive: cfg.Adaptive,
		detach:   detach,
	}
}

func (b *Binding) Field() *Field { return b.field }

// Debouncer exposes the underlying state machine, mainly for status display.
func (b *Binding) Debouncer() *debounce.Debouncer { return b.deb }

// HandleKey feeds one keyup through the debounce path. The field's content
// must already reflect the edit; the binding only reads it, mirroring a
// keyup handler reading the target's value.
func (b *Binding) HandleKey(code int, at time.Time) {
	if b.disposed {
		return
	}
	b.deb.Keystroke(debounce.KeyEvent{
		Code:  code,
		Value: b.field.Value(),
		Time:  at,
	})
}

// HandleBlur is the reset trigger: focus left the field, so the burst ends.
func (b *Binding) HandleBlur() {
	if b.disposed || !b.adaptive {
		return
	}
	b.deb.Reset()
}

// Dispose cancels any pending pause signal and detaches the binding from its
// registry. Further key events are ignored.
func (b *Binding) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.deb.Dispose()
	if b.detach != nil {
		b.detach(b)
	}
}
