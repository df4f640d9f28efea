package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fsnotify/fsnotify"
	"github.com/leaanthony/go-ansi-parser"
	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/input"
)

// ReplayKey is a synthetic keyup reconstructed from a transcript file.
type ReplayKey struct {
	Code int
	Rune rune
	Blur bool
}

// Watcher follows an append-only transcript file and replays whatever gets
// written to it as key events, so typing captured elsewhere (script(1),
// another pane, a test harness) can drive the monitor. Terminal escape
// sequences in the transcript are stripped before replay.
type Watcher struct {
	Path  string
	OnKey chan<- ReplayKey
}

func (w Watcher) Run(ctx context.Context) error {
	logger := log.Ctx(ctx)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: the transcript may not exist yet, and editors
	// replace files rather than write in place.
	dir := filepath.Dir(w.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info().Str("transcript", w.Path).Msg("watching transcript")

	var offset int64
	if err := w.replayFrom(ctx, &offset); err != nil {
		logger.Warn().Err(err).Msg("initial transcript read failed")
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("closing transcript watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != w.Path {
				continue
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				offset = 0
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.replayFrom(ctx, &offset); err != nil {
				logger.Warn().Err(err).Msg("transcript read failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// replayFrom reads transcript content past offset and emits it as keys.
func (w Watcher) replayFrom(ctx context.Context, offset *int64) error {
	f, err := os.Open(w.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(*offset, io.SeekStart); err != nil {
		return err
	}
	buf, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	*offset += int64(len(buf))
	if len(buf) == 0 {
		return nil
	}

	for _, key := range replayKeys(cleanse(buf)) {
		select {
		case <-ctx.Done():
			return nil
		case w.OnKey <- key:
		}
	}
	return nil
}

// cleanse strips ANSI escape sequences, keeping only printable content.
func cleanse(buf []byte) string {
	segments, err := ansi.Parse(string(buf))
	if err != nil {
		// Not parseable as styled text, take it raw.
		return string(buf)
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Label)
	}
	return b.String()
}

// replayKeys converts transcript text to key events: backspace deletes, a
// newline ends the line and blurs the field, carriage returns are dropped,
// everything printable types.
func replayKeys(text string) []ReplayKey {
	var keys []ReplayKey
	for _, r := range text {
		switch r {
		case '\b', 0x7f:
			keys = append(keys, ReplayKey{Code: 8})
		case '\n':
			keys = append(keys, ReplayKey{Blur: true})
		case '\r':
		default:
			if !unicode.IsPrint(r) {
				continue
			}
			keys = append(keys, ReplayKey{Code: input.CodeForRune(r), Rune: r})
		}
	}
	return keys
}
