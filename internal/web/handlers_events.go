package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// handleEvents streams board snapshots using Server-Sent Events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Subscribe before reading the initial state so no update is missed.
	updates, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // nginx: disable buffering

	if err := writeEvent(w, "initial", s.store.Projects()); err != nil {
		s.log.Error("write initial event", zap.Error(err))
		return
	}
	flusher.Flush()

	ctx := r.Context()
	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				s.log.Debug("event stream closed", zap.Error(err))
				return
			}
			flusher.Flush()

		case projects := <-updates:
			if err := writeEvent(w, "update", projects); err != nil {
				s.log.Warn("write update event", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, projects []domain.Project) error {
	data, err := json.Marshal(newProjectsResponse(projects))
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
