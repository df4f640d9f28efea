package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	flat := flag.Bool("flat", false, "dump state changes to stdout instead of the tcell UI")
	bind := flag.String("bind", envOr("LULL_BIND", ":3000"), "address for the status webserver")
	transcript := flag.String("transcript", os.Getenv("LULL_TRANSCRIPT"), "transcript file to watch and replay as keystrokes")
	logPath := flag.String("log", "lull.log", "log file (tail -f friendly)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	setupLogging(logFile)

	mgr := newLullStateManager()
	if err := mgr.Run(*bind, *transcript, !*flat); err != nil {
		log.Error().Err(err).Msg("lull exited with error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
