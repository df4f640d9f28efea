package ui

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/state"
)

// uiFlat dumps each state change as a single line, for terminals where the
// tcell UI is unwanted (CI, piping into other tools).
type uiFlat struct{}

func newUIFlat() (*uiFlat, error) {
	return &uiFlat{}, nil
}

func (u *uiFlat) Close() {}

func (u *uiFlat) Run(ctx context.Context, chanOnEvent chan<- Event, chanNewState <-chan *state.Lull) error {
	logger := log.Ctx(ctx).With().Caller().Logger()
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("context ended, exiting UI")
			return nil
		case s := <-chanNewState:
			u.dump(s)
		}
	}
}

func (u *uiFlat) dump(s *state.Lull) {
	if s == nil {
		return
	}
	line := fmt.Sprintf("%s\tstrokes %d\t%q", state.StatusString(s.Status), s.Strokes, s.Value)
	if len(s.Recent) > 0 {
		last := s.Recent[len(s.Recent)-1]
		line += fmt.Sprintf("\tlast pause %s after %s", last.At.Format("15:04:05.000"), last.Delay)
	}
	fmt.Println(line)
}
