// Command emitter appends simulated typing to a transcript file so that
// `lull -transcript <file>` has something to replay. It types a few phrases
// with human-ish cadence, pausing between them.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var phrases = []string{
	"the quick brown fox",
	"jumps over the lazy dog",
	"typing pauses are detected adaptively",
}

func main() {
	path := "transcript.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)

	fmt.Printf("typing into %s\n", path)
	for i := 0; ; i++ {
		phrase := phrases[i%len(phrases)]
		for _, r := range phrase {
			select {
			case <-sigChan:
				fmt.Println("Received SIGINT, shutting down...")
				return
			case <-time.After(120 * time.Millisecond):
			}
			fmt.Fprintf(f, "%c", r)
		}
		// End of thought: newline blurs the replayed field.
		fmt.Fprintln(f)
		select {
		case <-sigChan:
			fmt.Println("Received SIGINT, shutting down...")
			return
		case <-time.After(3 * time.Second):
		}
	}
}
