// Package debounce derives a single low-frequency "typing paused" signal from
// a bursty stream of raw keystrokes on a text input. A Debouncer owns the
// burst state for one bound input: it filters out navigation keys, estimates
// an appropriate wait from the observed typing cadence, and arms (or cancels
// and re-arms) a single pending timer whose expiry delivers the signal.
package debounce

import (
	"sync"
	"time"
	"unicode/utf8"
)

// EventTypingPaused is the name of the derived signal.
const EventTypingPaused = "typingpaused"

// KeyEvent is one raw keyup as seen by the bound input: the key code and the
// input's content after the edit. A zero Time means "now".
type KeyEvent struct {
	Code  int
	Value string
	Time  time.Time
}

// Event is the derived signal payload delivered to the subscription callback
// once typing has paused.
type Event struct {
	Type       string
	InputValue string // untransformed content
	Value      string // content after Config.Filter
	LastKey    KeyEvent
	Target     string // name of the bound input
	Strokes    int    // burst length at the time the signal was armed
	Delay      time.Duration
}

// Debouncer is the per-subscription state machine. All methods are safe for
// concurrent use, though in the intended cooperative setup only the timer
// expiry ever runs off the caller's loop.
type Debouncer struct {
	mu     sync.Mutex
	cfg    Config
	target string
	emit   func(Event)
	sched  Scheduler
	now    func() time.Time

	strokeCount int
	burstStart  time.Time
	pending     TimerHandle
	generation  uint64
	disposed    bool
}

// Option adjusts a Debouncer at construction time.
type Option func(*Debouncer)

// WithScheduler replaces the timer primitive, typically with a manual
// scheduler in tests.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) { d.sched = s }
}

// WithClock replaces the time source used when a KeyEvent carries no
// timestamp.
func WithClock(now func() time.Time) Option {
	return func(d *Debouncer) { d.now = now }
}

// New creates a Debouncer for one bound input. emit receives the derived
// signal when the armed timer expires; it is invoked on the timer's
// goroutine without any Debouncer lock held, so it may call back in.
func New(cfg Config, target string, emit func(Event), opts ...Option) *Debouncer {
	d := &Debouncer{
		cfg:    cfg.normalized(),
		target: target,
		emit:   emit,
		sched:  afterFuncScheduler{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Keystroke runs one transition of the state machine for a raw keyup.
//
// Navigation and modifier keys are ignored outright. An accepted key whose
// filtered value is empty or not longer than MinLength cancels any pending
// timer without arming a new one, leaving burst state untouched. Otherwise
// the pending timer is cancelled, the burst advanced, and a fresh timer
// armed with the estimated delay (MinWait when not adaptive).
func (d *Debouncer) Keystroke(ev KeyEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed || !Accepts(ev.Code) {
		return
	}

	value := ev.Value
	if d.cfg.Filter != nil {
		value = d.cfg.Filter(ev.Value)
	}
	if value == "" || utf8.RuneCountInString(value) <= d.cfg.MinLength {
		d.cancelLocked()
		return
	}

	now := ev.Time
	if now.IsZero() {
		now = d.now()
	}

	delay := d.cfg.MinWait
	if d.cfg.Adaptive {
		d.strokeCount++
		if d.strokeCount == 1 {
			d.burstStart = now
		}
		delay = Estimate(d.strokeCount, now.Sub(d.burstStart), d.cfg)
	}

	d.cancelLocked()
	d.generation++
	gen := d.generation
	signal := Event{
		Type:       EventTypingPaused,
		InputValue: ev.Value,
		Value:      value,
		LastKey:    ev,
		Target:     d.target,
		Strokes:    d.strokeCount,
		Delay:      delay,
	}
	d.pending = d.sched.Schedule(delay, func() {
		d.fire(gen, signal)
	})
}

// fire delivers the pause signal unless a later keystroke, reset or dispose
// invalidated this timer generation after its expiry was already in flight.
func (d *Debouncer) fire(gen uint64, signal Event) {
	d.mu.Lock()
	if d.disposed || gen != d.generation {
		d.mu.Unlock()
		return
	}
	// Back to idle. Burst state intentionally survives the fire: a further
	// keystroke keeps accumulating against the same burst until a reset.
	d.pending = nil
	emit := d.emit
	d.mu.Unlock()

	if emit != nil {
		emit(signal)
	}
}

// Reset clears the burst: stroke count and burst start are zeroed together
// and any pending timer is cancelled. Installed as the blur handler when the
// subscription is adaptive. Idempotent.
func (d *Debouncer) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.strokeCount = 0
	d.burstStart = time.Time{}
	d.cancelLocked()
}

// Dispose permanently stops the Debouncer: the burst is cleared, any pending
// timer cancelled, and every later Keystroke ignored.
func (d *Debouncer) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disposed = true
	d.strokeCount = 0
	d.burstStart = time.Time{}
	d.cancelLocked()
}

// Strokes returns the accepted keystroke count of the current burst and
// whether a pause signal is currently armed.
func (d *Debouncer) Strokes() (count int, armed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strokeCount, d.pending != nil
}

func (d *Debouncer) cancelLocked() {
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	// Invalidate an expiry that may already be in flight past Cancel.
	d.generation++
}
