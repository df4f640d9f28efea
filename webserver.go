package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Gleipnir-Technology/lull/event"
	"github.com/Gleipnir-Technology/lull/state"
)

//go:embed index.html
var indexHTML embed.FS

// Webserver exposes the monitor session over HTTP: a JSON snapshot, a live
// SSE stream of pause notifications, and a small status page.
type Webserver struct {
	chanChange <-chan *state.Lull
	chanPause  <-chan state.PauseRecord
	pauses     *event.Manager[state.PauseRecord]

	mu      sync.Mutex
	current *state.Lull
}

func NewWebserver(chanChange <-chan *state.Lull, chanPause <-chan state.PauseRecord) *Webserver {
	return &Webserver{
		chanChange: chanChange,
		chanPause:  chanPause,
		pauses:     event.NewManager[state.PauseRecord](),
	}
}

func (ws *Webserver) Start(ctx context.Context, bind string) {
	logger := log.Ctx(ctx)

	go ws.consume(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", ws.handleIndex)
	r.Get("/api/state", ws.handleState)
	r.Get("/events", ws.handleEvents)

	logger.Info().Str("bind", bind).Msg("webserver starting")
	if err := http.ListenAndServe(bind, r); err != nil {
		logger.Error().Err(err).Msg("webserver died")
	}
}

func (ws *Webserver) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-ws.chanChange:
			ws.mu.Lock()
			ws.current = s
			ws.mu.Unlock()
		case rec := <-ws.chanPause:
			ws.pauses.Publish(rec)
		}
	}
}

func (ws *Webserver) handleIndex(w http.ResponseWriter, r *http.Request) {
	content, err := indexHTML.ReadFile("index.html")
	if err != nil {
		http.Error(w, "Could not load HTML", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}

func (ws *Webserver) handleState(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	current := ws.current
	ws.mu.Unlock()
	if current == nil {
		current = &state.Lull{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(current); err != nil {
		log.Warn().Err(err).Msg("failed to encode state")
	}
}

// handleEvents streams pause notifications as Server-Sent Events.
func (ws *Webserver) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Send an initial connected event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\": \"connected\", \"time\": %q}\n\n", time.Now().Format(time.RFC3339))
	flusher.Flush()

	sub := ws.pauses.Subscribe()
	defer sub.Close()

	done := r.Context().Done()
	for {
		select {
		case <-done:
			log.Info().Msg("Client closed connection")
			return
		case rec := <-sub.C:
			payload, err := json.Marshal(rec)
			if err != nil {
				log.Warn().Err(err).Msg("failed to encode pause record")
				continue
			}
			fmt.Fprintf(w, "event: pause\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
