package api

import (
	"fmt"
	"net/http"
	"time"
)

// heartbeatInterval is how often an idle /live connection receives a
// keepalive comment frame, per spec: long enough to not spam intermediaries,
// short enough that proxies with aggressive idle timeouts don't close it.
const heartbeatInterval = 30 * time.Second

// handleLive handles GET /live: a long-lived SSE stream from the Hub. Unlike
// the teacher's /stream, there is no Last-Event-ID replay contract — a
// reconnecting client is expected to fall back to /drain + /older to recover
// anything it missed, since Drashta keeps no durable event log to replay
// from.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported", nil)
		return
	}

	eventName := r.URL.Query().Get("event_name")
	if eventName == "" {
		writeError(w, http.StatusBadRequest, "event_name is required", nil)
		return
	}
	topic, ok := s.engine.ResolveTopic(eventName)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown event_name", nil)
		return
	}
	filter := parseFilter(r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.hub.Subscribe(topic)
	defer sub.Close()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if !filter.Matches(ev, ev.RawMessage) {
				continue
			}
			if err := writeSSELog(w, ev); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()

		case <-ctx.Done():
			return
		}
	}
}
