package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vamsi200/drashta/internal/event"
)

type cursorFrame struct {
	Cursor string `json:"cursor"`
}

// writeSSELog writes one `event: log` / `data: <json>` frame.
func writeSSELog(w http.ResponseWriter, ev event.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: log\ndata: %s\n\n", data)
	return err
}

// writeSSECursor writes the terminal `event: cursor` frame. Callers must
// skip this entirely when cursor is "" (end-of-stream, per spec: absence of
// the frame is how clients detect it, not an empty value inside one).
func writeSSECursor(w http.ResponseWriter, cursor string) error {
	data, err := json.Marshal(cursorFrame{Cursor: cursor})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: cursor\ndata: %s\n\n", data)
	return err
}
