package state

import "time"

// Lull is an immutable snapshot of the monitor session, handed to the UI and
// webserver whenever something changes.
type Lull struct {
	Field     string        `json:"field"`
	Value     string        `json:"value"`
	Status    Status        `json:"status"`
	Strokes   int           `json:"strokes"`
	LastDelay time.Duration `json:"last_delay_ns"`
	Recent    []PauseRecord `json:"recent"`
}

// PauseRecord is one delivered typing-pause notification.
type PauseRecord struct {
	At      time.Time     `json:"at"`
	Field   string        `json:"field"`
	Value   string        `json:"value"`
	Strokes int           `json:"strokes"`
	Delay   time.Duration `json:"delay_ns"`
}

type Status int

const (
	StatusIdle Status = iota
	StatusTyping
	StatusPaused
	StatusBlurred
)

func StatusString(s Status) string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusTyping:
		return "typing"
	case StatusPaused:
		return "paused"
	case StatusBlurred:
		return "blurred"
	}
	return "unknown"
}
