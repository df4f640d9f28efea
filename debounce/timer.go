package debounce

import "time"

// TimerHandle is one outstanding scheduled callback. Cancel prevents a
// callback that has not yet been dispatched; it has no effect on one that is
// already in flight.
type TimerHandle interface {
	Cancel()
}

// Scheduler is the timer primitive the state machine arms its pause signal
// with. The production implementation wraps time.AfterFunc; tests inject a
// manual scheduler that records durations and fires on demand.
type Scheduler interface {
	Schedule(d time.Duration, f func()) TimerHandle
}

type afterFuncScheduler struct{}

func (afterFuncScheduler) Schedule(d time.Duration, f func()) TimerHandle {
	return timerHandle{time.AfterFunc(d, f)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() {
	h.t.Stop()
}
