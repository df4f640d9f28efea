// Command monitor shows the debounce library used directly, without the TUI:
// it feeds a scripted burst of keystrokes into a bound field and prints the
// pause notifications as they fire.
package main

import (
	"fmt"
	"time"

	"github.com/Gleipnir-Technology/lull/debounce"
	"github.com/Gleipnir-Technology/lull/input"
)

func main() {
	registry := input.NewRegistry()
	field := input.NewField("search")
	registry.Register(field)

	cfg := debounce.DefaultConfig()
	cfg.MaxWait = time.Second

	handle := registry.Bind("search", cfg, func(ev debounce.Event) {
		fmt.Printf("paused: %q after %d strokes (waited %s)\n", ev.Value, ev.Strokes, ev.Delay)
	})
	defer handle.Dispose()

	type stroke struct {
		r     rune
		pause time.Duration
	}
	script := []stroke{
		{'h', 90 * time.Millisecond},
		{'e', 110 * time.Millisecond},
		{'l', 80 * time.Millisecond},
		{'l', 95 * time.Millisecond},
		{'o', 2 * time.Second}, // the lull
		{' ', 100 * time.Millisecond},
		{'g', 90 * time.Millisecond},
		{'o', 2 * time.Second},
	}
	for _, s := range script {
		registry.Dispatch("search", input.CodeForRune(s.r), s.r, time.Now())
		time.Sleep(s.pause)
	}
	fmt.Printf("final value: %q\n", field.Value())
}
