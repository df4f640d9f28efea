package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/debounce"
	"github.com/Gleipnir-Technology/lull/input"
	"github.com/Gleipnir-Technology/lull/state"
	"github.com/Gleipnir-Technology/lull/ui"
)

const fieldName = "editor"
const maxRecent = 50

// lullStateManager owns the session and runs the cooperative event loop:
// keystrokes (live or replayed), blurs and pause deliveries are all
// dispatched from the single Run goroutine, so each handler finishes before
// the next event for the session is processed. Timer expiries re-enter the
// loop through chanPause.
type lullStateManager struct {
	chanUIEvents        chan ui.Event
	chanReplayKeys      chan ReplayKey
	chanPause           chan debounce.Event
	chanSomethingDied   chan error
	chanNewState        chan *state.Lull
	chanWebserverChange chan *state.Lull
	chanWebserverPause  chan state.PauseRecord

	registry  *input.Registry
	field     *input.Field
	handle    *input.Handle
	isRunning bool
	st        state.Lull
}

func newLullStateManager() *lullStateManager {
	return &lullStateManager{
		chanUIEvents:        make(chan ui.Event),
		chanReplayKeys:      make(chan ReplayKey),
		chanPause:           make(chan debounce.Event, 10),
		chanSomethingDied:   make(chan error),
		chanNewState:        make(chan *state.Lull, 10),
		chanWebserverChange: make(chan *state.Lull, 10),
		chanWebserverPause:  make(chan state.PauseRecord, 10),
		isRunning:           true,
		st: state.Lull{
			Field:  fieldName,
			Status: state.StatusIdle,
		},
	}
}

func (mgr *lullStateManager) Run(bind string, transcript string, enableTUI bool) error {
	// Create a context that we can cancel for signaling all goroutines to clean up
	ctx, cancel := context.WithCancel(log.With().Logger().WithContext(context.Background()))
	defer cancel()

	mgr.registry = input.NewRegistry()
	mgr.field = input.NewField(fieldName)
	mgr.field.Focus()
	mgr.registry.Register(mgr.field)

	mgr.handle = mgr.registry.Bind(fieldName, debounce.DefaultConfig(), func(ev debounce.Event) {
		// Runs on the timer goroutine; hand the delivery to the loop.
		select {
		case mgr.chanPause <- ev:
		default:
			log.Warn().Str("target", ev.Target).Msg("dropping pause event, loop busy")
		}
	})
	defer mgr.handle.Dispose()

	if transcript != "" {
		watcher := Watcher{
			Path:  transcript,
			OnKey: mgr.chanReplayKeys,
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				mgr.chanSomethingDied <- fmt.Errorf("watcher died: %w", err)
			}
		}()
	}

	var u ui.UI
	var err error
	if enableTUI {
		u, err = ui.NewTUI()
	} else {
		u, err = ui.NewFlat()
	}
	if err != nil {
		return fmt.Errorf("failed to create UI: %w", err)
	}
	defer u.Close()
	go func() {
		if err := u.Run(ctx, mgr.chanUIEvents, mgr.chanNewState); err != nil {
			mgr.chanSomethingDied <- fmt.Errorf("ui died: %w", err)
		}
	}()

	ws := NewWebserver(mgr.chanWebserverChange, mgr.chanWebserverPause)
	go ws.Start(ctx, bind)

	mgr.broadcast()
	var causeOfDeath error
	for mgr.isRunning {
		select {
		case causeOfDeath = <-mgr.chanSomethingDied:
			log.Error().Err(causeOfDeath).Msg("something died")
			mgr.isRunning = false
		case evt := <-mgr.chanUIEvents:
			mgr.handleEventUI(evt)
		case key := <-mgr.chanReplayKeys:
			mgr.handleReplayKey(key)
		case ev := <-mgr.chanPause:
			mgr.handlePause(ev)
		}
		mgr.broadcast()
	}
	log.Debug().Msg("exiting state run loop")
	cancel()
	if causeOfDeath != nil {
		return fmt.Errorf("instadeath: %w", causeOfDeath)
	}
	return nil
}

func (mgr *lullStateManager) handleEventUI(evt ui.Event) {
	switch evt.Type {
	case ui.EventExit:
		log.Debug().Msg("exit requested")
		mgr.isRunning = false
	case ui.EventBlur:
		mgr.blur()
	case ui.EventKey:
		mgr.keystroke(evt.Code, evt.Rune)
	case ui.EventResize:
		// broadcast after the switch redraws everything
	}
}

func (mgr *lullStateManager) handleReplayKey(key ReplayKey) {
	if key.Blur {
		mgr.blur()
		return
	}
	mgr.keystroke(key.Code, key.Rune)
}

func (mgr *lullStateManager) keystroke(code int, r rune) {
	if !mgr.field.Focused() {
		mgr.field.Focus()
	}
	mgr.registry.Dispatch(fieldName, code, r, time.Now())
	if _, armed := mgr.strokes(); armed {
		mgr.st.Status = state.StatusTyping
	}
}

func (mgr *lullStateManager) blur() {
	log.Debug().Str("field", fieldName).Msg("blur")
	mgr.registry.Blur(fieldName)
	mgr.st.Status = state.StatusBlurred
}

func (mgr *lullStateManager) handlePause(ev debounce.Event) {
	log.Info().Str("target", ev.Target).Str("value", ev.Value).Int("strokes", ev.Strokes).Msg("typing paused")
	rec := state.PauseRecord{
		At:      time.Now(),
		Field:   ev.Target,
		Value:   ev.Value,
		Strokes: ev.Strokes,
		Delay:   ev.Delay,
	}
	mgr.st.Recent = append(mgr.st.Recent, rec)
	if len(mgr.st.Recent) > maxRecent {
		mgr.st.Recent = mgr.st.Recent[len(mgr.st.Recent)-maxRecent:]
	}
	mgr.st.Status = state.StatusPaused
	mgr.st.LastDelay = ev.Delay
	select {
	case mgr.chanWebserverPause <- rec:
	default:
	}
}

func (mgr *lullStateManager) strokes() (int, bool) {
	for _, b := range mgr.registry.Bindings(fieldName) {
		return b.Debouncer().Strokes()
	}
	return 0, false
}

// broadcast pushes a fresh snapshot to the UI and webserver. Neither send
// blocks the loop.
func (mgr *lullStateManager) broadcast() {
	mgr.st.Value = mgr.field.Value()
	mgr.st.Strokes, _ = mgr.strokes()
	snapshot := mgr.st
	snapshot.Recent = append([]state.PauseRecord(nil), mgr.st.Recent...)
	select {
	case mgr.chanNewState <- &snapshot:
	default:
	}
	select {
	case mgr.chanWebserverChange <- &snapshot:
	default:
	}
}
