package input

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/debounce"
)

// Registry resolves bind names to live Fields and routes raw key activity to
// the resulting bindings. Several fields may share a name, in which case one
// Bind fans out into an independent binding (and independent burst state)
// per field. Binding a name with no matches is not an error: the request is
// held and attached when a matching field is registered.
type Registry struct {
	mu       sync.Mutex
	fields   map[string][]*Field
	bindings map[*Field][]*Binding
	pending  []*bindRequest
}

type bindRequest struct {
	name   string
	cfg    debounce.Config
	fn     func(debounce.Event)
	opts   []debounce.Option
	handle *Handle
}

// Handle detaches one Bind call: every binding it fanned out into, plus the
// standing request that would attach it to future fields.
type Handle struct {
	registry *Registry
	request  *bindRequest
	bindings []*Binding
	disposed bool
}

func NewRegistry() *Registry {
	return &Registry{
		fields:   make(map[string][]*Field),
		bindings: make(map[*Field][]*Binding),
	}
}

// Register adds a field and attaches any bind requests waiting on its name.
func (r *Registry) Register(f *Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[f.Name()] = append(r.fields[f.Name()], f)
	for _, req := range r.pending {
		if req.name == f.Name() {
			r.attachLocked(req, f)
			log.Debug().Str("field", f.Name()).Msg("attached deferred binding")
		}
	}
}

// Bind subscribes fn to typing pauses on every field named name, now or in
// the future. The returned handle disposes all of them at once.
func (r *Registry) Bind(name string, cfg debounce.Config, fn func(debounce.Event), opts ...debounce.Option) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	req := &bindRequest{name: name, cfg: cfg, fn: fn, opts: opts}
	req.handle = &Handle{registry: r, request: req}
	for _, f := range r.fields[name] {
		r.attachLocked(req, f)
	}
	r.pending = append(r.pending, req)
	return req.handle
}

// Dispatch routes one raw keyup to the named target: the key's content
// effect is applied to each matching field, then each binding on that field
// sees the event.
func (r *Registry) Dispatch(name string, code int, rn rune, at time.Time) {
	r.mu.Lock()
	var fed []*Binding
	for _, f := range r.fields[name] {
		f.Edit(code, rn)
		fed = append(fed, r.bindings[f]...)
	}
	r.mu.Unlock()
	for _, b := range fed {
		b.HandleKey(code, at)
	}
}

// Blur routes a focus-loss event to the named target, ending any burst.
func (r *Registry) Blur(name string) {
	r.mu.Lock()
	var fed []*Binding
	for _, f := range r.fields[name] {
		f.Blur()
		fed = append(fed, r.bindings[f]...)
	}
	r.mu.Unlock()
	for _, b := range fed {
		b.HandleBlur()
	}
}

// Bindings returns the bindings currently attached to fields with the given
// name, for status display.
func (r *Registry) Bindings(name string) []*Binding {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Binding
	for _, f := range r.fields[name] {
		out = append(out, r.bindings[f]...)
	}
	return out
}

func (r *Registry) attachLocked(req *bindRequest, f *Field) {
	b := newBinding(f, req.cfg, req.fn, r.removeBinding, req.opts...)
	r.bindings[f] = append(r.bindings[f], b)
	req.handle.bindings = append(req.handle.bindings, b)
}

func (r *Registry) removeBinding(b *Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.bindings[b.field]
	for i, cur := range list {
		if cur == b {
			r.bindings[b.field] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// Dispose detaches every binding this handle created and withdraws the
// standing request. Idempotent.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true

	h.registry.mu.Lock()
	for i, req := range h.registry.pending {
		if req == h.request {
			h.registry.pending = append(h.registry.pending[:i], h.registry.pending[i+1:]...)
			break
		}
	}
	bindings := h.bindings
	h.bindings = nil
	h.registry.mu.Unlock()

	for _, b := range bindings {
		b.Dispose()
	}
}
