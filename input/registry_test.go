package input

import (
	"testing"
	"time"

	"github.com/Gleipnir-Technology/lull/debounce"
)

type fakeScheduler struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	d         time.Duration
	f         func()
	cancelled bool
}

func (t *fakeTimer) Cancel() { t.cancelled = true }

func (s *fakeScheduler) Schedule(d time.Duration, f func()) debounce.TimerHandle {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fireAll() {
	for _, tm := range s.timers {
		if !tm.cancelled && tm.f != nil {
			f := tm.f
			tm.f = nil
			f()
		}
	}
}

var t0 = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func TestBindAndDispatch(t *testing.T) {
	r := NewRegistry()
	f := NewField("search")
	r.Register(f)

	sched := &fakeScheduler{}
	var events []debounce.Event
	h := r.Bind("search", debounce.DefaultConfig(), func(ev debounce.Event) {
		events = append(events, ev)
	}, debounce.WithScheduler(sched))
	defer h.Dispose()

	r.Dispatch("search", 'A', 'a', t0)
	r.Dispatch("search", 'B', 'b', t0.Add(100*time.Millisecond))
	if got := f.Value(); got != "ab" {
		t.Fatalf("field value = %q, want \"ab\"", got)
	}

	sched.fireAll()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Value != "ab" || events[0].Target != "search" {
		t.Errorf("event = %+v, want value \"ab\" on \"search\"", events[0])
	}
}

func TestBindFansOutAcrossMatchingFields(t *testing.T) {
	r := NewRegistry()
	a := NewField("cell")
	b := NewField("cell")
	r.Register(a)
	r.Register(b)

	sched := &fakeScheduler{}
	var events []debounce.Event
	h := r.Bind("cell", debounce.DefaultConfig(), func(ev debounce.Event) {
		events = append(events, ev)
	}, debounce.WithScheduler(sched))
	defer h.Dispose()

	if got := len(r.Bindings("cell")); got != 2 {
		t.Fatalf("bindings = %d, want 2", got)
	}

	// One dispatch reaches both fields but each keeps independent burst state.
	r.Dispatch("cell", 'A', 'a', t0)
	r.Dispatch("cell", 'B', 'b', t0.Add(50*time.Millisecond))
	sched.fireAll()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Only the second dispatch passed the length check, so each burst holds
	// exactly one accepted stroke.
	for _, binding := range r.Bindings("cell") {
		if count, _ := binding.Debouncer().Strokes(); count != 1 {
			t.Errorf("strokes = %d, want 1", count)
		}
	}
}

func TestBindDefersUntilFieldRegistered(t *testing.T) {
	r := NewRegistry()
	sched := &fakeScheduler{}
	var events []debounce.Event
	h := r.Bind("late", debounce.DefaultConfig(), func(ev debounce.Event) {
		events = append(events, ev)
	}, debounce.WithScheduler(sched))
	defer h.Dispose()

	if got := len(r.Bindings("late")); got != 0 {
		t.Fatalf("bindings before registration = %d, want 0", got)
	}

	f := NewField("late")
	r.Register(f)
	if got := len(r.Bindings("late")); got != 1 {
		t.Fatalf("bindings after registration = %d, want 1", got)
	}

	r.Dispatch("late", 'A', 'a', t0)
	r.Dispatch("late", 'B', 'b', t0.Add(50*time.Millisecond))
	sched.fireAll()
	if len(events) != 1 {
		t.Errorf("events = %d, want 1", len(events))
	}
}

func TestBlurResetsAdaptiveBurst(t *testing.T) {
	r := NewRegistry()
	f := NewField("editor")
	r.Register(f)

	sched := &fakeScheduler{}
	cfg := debounce.DefaultConfig()
	h := r.Bind("editor", cfg, func(debounce.Event) {}, debounce.WithScheduler(sched))
	defer h.Dispose()

	r.Dispatch("editor", 'A', 'a', t0)
	r.Dispatch("editor", 'B', 'b', t0.Add(100*time.Millisecond))
	r.Blur("editor")
	if f.Focused() {
		t.Error("field still focused after blur")
	}

	// Next keystroke starts a fresh burst: first-stroke delay is MaxWait.
	r.Dispatch("editor", 'C', 'c', t0.Add(200*time.Millisecond))
	last := sched.timers[len(sched.timers)-1]
	if last.d != cfg.MaxWait {
		t.Errorf("post-blur stroke armed %v, want %v", last.d, cfg.MaxWait)
	}
}

func TestHandleDisposeDetachesEverything(t *testing.T) {
	r := NewRegistry()
	f := NewField("editor")
	r.Register(f)

	sched := &fakeScheduler{}
	var events []debounce.Event
	h := r.Bind("editor", debounce.DefaultConfig(), func(ev debounce.Event) {
		events = append(events, ev)
	}, debounce.WithScheduler(sched))

	r.Dispatch("editor", 'A', 'a', t0)
	r.Dispatch("editor", 'B', 'b', t0.Add(50*time.Millisecond))
	h.Dispose()
	h.Dispose() // idempotent

	if got := len(r.Bindings("editor")); got != 0 {
		t.Errorf("bindings after dispose = %d, want 0", got)
	}
	sched.fireAll()
	if len(events) != 0 {
		t.Errorf("events after dispose = %d, want 0", len(events))
	}

	// The standing request is withdrawn too: new fields do not attach.
	r.Register(NewField("editor"))
	if got := len(r.Bindings("editor")); got != 0 {
		t.Errorf("bindings after late registration = %d, want 0", got)
	}
}
