package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
	"github.com/vamsi200/drashta/internal/metrics"
	"github.com/vamsi200/drashta/internal/query"
)

const defaultLimit = 100

// parseFilter reads event_type (repeatable) and query from the request's
// query string into a query.Filter.
func parseFilter(r *http.Request) query.Filter {
	return query.Filter{
		EventTypes: r.URL.Query()["event_type"],
		Query:      r.URL.Query().Get("query"),
	}
}

// parseLimit reads limit (default defaultLimit, capped at s.maxLimit).
func (s *Server) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if n > s.maxLimit {
		n = s.maxLimit
	}
	return n, nil
}

// handleDrain handles GET /drain.
func (s *Server) handleDrain(w http.ResponseWriter, r *http.Request) {
	eventName := r.URL.Query().Get("event_name")
	if eventName == "" {
		writeError(w, http.StatusBadRequest, "event_name is required", nil)
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := parseFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()
	start := time.Now()
	events, cursor, err := s.engine.Drain(ctx, eventName, limit, filter)
	observeQueryDuration("drain", start)
	s.writeQueryResult(w, events, cursor, err)
}

// handleOlder handles GET /older.
func (s *Server) handleOlder(w http.ResponseWriter, r *http.Request) {
	eventName := r.URL.Query().Get("event_name")
	cursor := r.URL.Query().Get("cursor")
	if eventName == "" {
		writeError(w, http.StatusBadRequest, "event_name is required", nil)
		return
	}
	if cursor == "" {
		writeError(w, http.StatusBadRequest, "cursor is required", nil)
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := parseFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()
	start := time.Now()
	events, next, err := s.engine.Older(ctx, eventName, cursor, limit, filter)
	observeQueryDuration("older", start)
	s.writeQueryResult(w, events, next, err)
}

// handlePrevious handles GET /previous.
func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	eventName := r.URL.Query().Get("event_name")
	cursor := r.URL.Query().Get("cursor")
	if eventName == "" {
		writeError(w, http.StatusBadRequest, "event_name is required", nil)
		return
	}
	if cursor == "" {
		writeError(w, http.StatusBadRequest, "cursor is required", nil)
		return
	}
	limit, err := s.parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter := parseFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), s.queryTimeout)
	defer cancel()
	start := time.Now()
	events, next, err := s.engine.Previous(ctx, eventName, cursor, limit, filter)
	observeQueryDuration("previous", start)
	s.writeQueryResult(w, events, next, err)
}

// observeQueryDuration records a historical query route's wall-clock time.
func observeQueryDuration(route string, start time.Time) {
	metrics.HistoricalQueryDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// writeQueryResult frames a one-shot historical query response as SSE: one
// `event: log` frame per event, followed by a single `event: cursor` frame
// unless cursor is empty (end-of-stream, per spec — its absence, not an
// empty value, is the end-of-stream signal).
func (s *Server) writeQueryResult(w http.ResponseWriter, events []event.Event, cursor string, err error) {
	if err == query.ErrUnknownTopic {
		writeError(w, http.StatusNotFound, "unknown event_name", nil)
		return
	}
	if errors.Is(err, journal.ErrUnknownCursor) {
		writeError(w, http.StatusBadRequest, "cursor not recognized", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "journal query failed", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	for _, ev := range events {
		if err := writeSSELog(w, ev); err != nil {
			return
		}
	}
	if cursor != "" {
		if err := writeSSECursor(w, cursor); err != nil {
			return
		}
	}
	if ok {
		flusher.Flush()
	}
}
