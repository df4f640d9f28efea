package debounce

import (
	"math"
	"time"
)

// Estimate computes the delay to wait after a keystroke before declaring the
// typing paused, from the observed cadence of the current burst.
//
// The first stroke of a burst has no history to estimate from, so it returns
// cfg.MaxWait. Afterwards the average inter-keystroke interval, scaled by
// cfg.WaitMultiplier, becomes the candidate delay, capped at cfg.MaxWait.
// The result is never below cfg.MinWait.
func Estimate(strokeCount int, elapsed time.Duration, cfg Config) time.Duration {
	var d time.Duration
	if strokeCount <= 1 {
		d = cfg.MaxWait
	} else {
		avg := math.Round(float64(elapsed.Milliseconds()) / float64(strokeCount))
		d = time.Duration(avg*cfg.WaitMultiplier) * time.Millisecond
		if d > cfg.MaxWait {
			d = cfg.MaxWait
		}
	}
	if d < cfg.MinWait {
		d = cfg.MinWait
	}
	return d
}
