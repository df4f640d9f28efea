package ui

import (
	"context"

	"github.com/Gleipnir-Technology/lull/state"
)

type EventType int

const (
	EventNone EventType = iota
	EventExit
	EventResize
	EventKey  // a keyup destined for the monitored field
	EventBlur // focus left the monitored field
)

// Event is user input surfaced by the UI. Key events carry the numeric key
// code plus the typed rune, zero when the key produced none.
type Event struct {
	Type EventType
	Code int
	Rune rune
}

type UI interface {
	Close()
	Run(context.Context, chan<- Event, <-chan *state.Lull) error
}

func NewTUI() (UI, error) {
	return newUITcell()
}

func NewFlat() (UI, error) {
	return newUIFlat()
}
