package debounce

import "time"

// Config controls one debounced subscription. It is immutable once handed to
// New; callers wanting different settings create a new Debouncer.
type Config struct {
	// Adaptive enables rate-based delay estimation. When false the delay is
	// always MinWait and stroke counting is not performed.
	Adaptive bool
	// MinLength is the minimum content length required before a pause signal
	// may be scheduled. The filtered value must be strictly longer.
	MinLength int
	// MinWait is the lower bound of the fire delay.
	MinWait time.Duration
	// MaxWait is the upper bound of the estimated delay.
	MaxWait time.Duration
	// WaitMultiplier scales the observed average inter-keystroke interval
	// into a candidate delay.
	WaitMultiplier float64
	// Filter maps raw input content to the value tested against MinLength
	// and delivered in the pause payload. Nil means no transformation.
	Filter func(string) string
}

const (
	DefaultMinLength      = 1
	DefaultMinWait        = 400 * time.Millisecond
	DefaultMaxWait        = 3 * time.Second
	DefaultWaitMultiplier = 4
)

func DefaultConfig() Config {
	return Config{
		Adaptive:       true,
		MinLength:      DefaultMinLength,
		MinWait:        DefaultMinWait,
		MaxWait:        DefaultMaxWait,
		WaitMultiplier: DefaultWaitMultiplier,
	}
}

// normalized fills unset duration and multiplier fields with defaults. A
// zero is meaningless for these fields, so it reads as "not supplied" rather
// than being rejected. Adaptive and MinLength are taken as given since false
// and 0 are legitimate settings.
func (c Config) normalized() Config {
	if c.MinWait <= 0 {
		c.MinWait = DefaultMinWait
	}
	if c.MaxWait < c.MinWait {
		c.MaxWait = DefaultMaxWait
		if c.MaxWait < c.MinWait {
			c.MaxWait = c.MinWait
		}
	}
	if c.WaitMultiplier <= 0 {
		c.WaitMultiplier = DefaultWaitMultiplier
	}
	if c.MinLength < 0 {
		c.MinLength = 0
	}
	return c
}
