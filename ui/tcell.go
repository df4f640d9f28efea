package ui

import (
	"context"
	"fmt"
	"reflect"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/debounce"
	"github.com/Gleipnir-Technology/lull/input"
	"github.com/Gleipnir-Technology/lull/state"
)

type uiTcell struct {
	screen tcell.Screen
}

func newUITcell() (*uiTcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	// Set default text style
	defStyle := tcell.StyleDefault.Background(color.Reset).Foreground(color.Reset)
	screen.SetStyle(defStyle)

	screen.Clear()
	return &uiTcell{
		screen: screen,
	}, nil
}

func (u *uiTcell) Close() {
	u.screen.Fini()
}

func (u *uiTcell) Run(ctx context.Context, chanOnEvent chan<- Event, chanNewState <-chan *state.Lull) error {
	logger := log.Ctx(ctx).With().Caller().Logger()
	logger.Info().Msg("Started ui loop")
	u.drawInitial()
	for {
		u.screen.Show()
		select {
		case <-ctx.Done():
			logger.Debug().Msg("context ended, exiting UI")
			return nil
		case evt := <-u.screen.EventQ():
			e := convertEvent(evt)
			if e.Type == EventResize {
				u.screen.Sync()
			}
			if e.Type != EventNone {
				chanOnEvent <- e
			}
		case s := <-chanNewState:
			u.redraw(s)
		}
	}
}

func (u *uiTcell) drawInitial() {
	u.drawText(0, 0, tcell.StyleDefault.Foreground(color.Yellow).Bold(true), "Starting up...")
}

func (u *uiTcell) redraw(s *state.Lull) {
	if s == nil {
		return
	}
	u.screen.Clear()
	u.drawTitle(s)
	u.drawField(s)
	u.drawBurst(s)
	u.drawRecent(s)
	u.screen.Show()
}

func (u *uiTcell) drawTitle(s *state.Lull) {
	u.drawText(0, 0, tcell.StyleDefault.Foreground(color.Green).Bold(true), "lull")
	style := tcell.StyleDefault.Foreground(color.White).Bold(true)
	switch s.Status {
	case state.StatusTyping:
		style = tcell.StyleDefault.Foreground(color.Yellow).Bold(true)
	case state.StatusPaused:
		style = tcell.StyleDefault.Foreground(color.Green).Bold(true)
	case state.StatusBlurred:
		style = tcell.StyleDefault.Foreground(color.Blue).Bold(true)
	}
	u.drawText(6, 0, style, state.StatusString(s.Status))
	u.drawText(16, 0, tcell.StyleDefault.Foreground(color.White), "Esc/Ctrl-C quit, Tab blur")
}

func (u *uiTcell) drawField(s *state.Lull) {
	u.drawText(0, 2, tcell.StyleDefault.Foreground(color.White), fmt.Sprintf("%s> %s", s.Field, s.Value))
	if s.Status != state.StatusBlurred {
		cursor := len(s.Field) + 2 + len([]rune(s.Value))
		u.drawText(cursor, 2, tcell.StyleDefault.Reverse(true), " ")
	}
}

func (u *uiTcell) drawBurst(s *state.Lull) {
	u.drawText(0, 4, tcell.StyleDefault.Foreground(color.White),
		fmt.Sprintf("burst: %d strokes, last armed delay %s", s.Strokes, s.LastDelay))
}

func (u *uiTcell) drawRecent(s *state.Lull) {
	if len(s.Recent) == 0 {
		return
	}
	u.drawText(0, 6, tcell.StyleDefault.Foreground(color.White).Bold(true), "Recent pauses:")
	// Newest first, capped to avoid overflowing small terminals.
	row := 7
	for i := len(s.Recent) - 1; i >= 0; i-- {
		if row > 20 {
			u.drawText(1, row, tcell.StyleDefault.Foreground(color.White), "...")
			break
		}
		rec := s.Recent[i]
		u.drawText(1, row, tcell.StyleDefault.Foreground(color.White),
			fmt.Sprintf("%s  %-12s %q (%d strokes, %s)",
				rec.At.Format("15:04:05.000"), rec.Field, rec.Value, rec.Strokes, rec.Delay))
		row++
	}
}

func (u *uiTcell) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func convertEvent(evt tcell.Event) Event {
	logger := log.Logger
	switch ev := evt.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			logger.Debug().Msg("exit keypress")
			return Event{Type: EventExit}
		case tcell.KeyTab:
			return Event{Type: EventBlur}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Type: EventKey, Code: debounce.KeyBackspace}
		case tcell.KeyEnter:
			return Event{Type: EventKey, Code: debounce.KeyEnter}
		case tcell.KeyLeft:
			return Event{Type: EventKey, Code: debounce.KeyLeft}
		case tcell.KeyUp:
			return Event{Type: EventKey, Code: debounce.KeyUp}
		case tcell.KeyRight:
			return Event{Type: EventKey, Code: debounce.KeyRight}
		case tcell.KeyDown:
			return Event{Type: EventKey, Code: debounce.KeyDown}
		}
		s := ev.Str()
		if s == "" {
			return Event{Type: EventNone}
		}
		r := []rune(s)[0]
		return Event{Type: EventKey, Code: input.CodeForRune(r), Rune: r}
	case *tcell.EventResize:
		return Event{Type: EventResize}
	case *tcell.EventError:
		logger.Info().Msg("event error")
		return Event{Type: EventNone}
	case *tcell.EventFocus:
		logger.Info().Msg("event focus")
		return Event{Type: EventNone}
	case *tcell.EventInterrupt:
		logger.Info().Msg("event interrupt")
		return Event{Type: EventNone}
	case *tcell.EventMouse:
		return Event{Type: EventNone}
	case *tcell.EventPaste:
		return Event{Type: EventNone}
	default:
		t := reflect.TypeOf(evt)
		if t == nil {
			logger.Info().Msg("unrecognized nil event")
		} else {
			logger.Info().Str("type", t.Name()).Msg("unrecognized event")
		}
		return Event{Type: EventNone}
	}
}
