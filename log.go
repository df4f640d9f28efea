package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogging(file *os.File) zerolog.Logger {
	if os.Getenv("LULL_VERBOSE") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Track start time for delta timestamps
	startTime := time.Now()

	writer := zerolog.ConsoleWriter{
		Out:        file,
		NoColor:    false,      // Enable colors for tail -f
		TimeFormat: "15:04:05", // placeholder, will be overridden
	}
	// Custom timestamp formatter showing elapsed time
	writer.FormatTimestamp = func(i any) string {
		elapsed := time.Since(startTime)

		hours := int(elapsed.Hours())
		minutes := int(elapsed.Minutes()) % 60
		seconds := int(elapsed.Seconds()) % 60
		millis := int(elapsed.Milliseconds()) % 1000

		return fmt.Sprintf("\x1b[90m[+%02d:%02d:%02d.%03d]\x1b[0m",
			hours, minutes, seconds, millis)
	}

	// Create logger with timestamp
	log.Logger = zerolog.New(writer).With().Timestamp().Caller().Logger()

	log.Debug().Msg("Running in verbose mode due to LULL_VERBOSE")
	return log.Logger
}
