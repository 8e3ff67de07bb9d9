//go:build integration

package integration

import (
	"bufio"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/vamsi200/drashta/internal/event"
)

func TestHealthzEndpoint(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	resp, err := http.Get(app.URL() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestDrainReturnsNewestFirstWithoutCursorAtJournalEnd(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	resp, err := http.Get(app.URL() + "/drain?event_name=sshd.events&limit=10")
	if err != nil {
		t.Fatalf("GET /drain: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q, want text/event-stream", ct)
	}

	frames := readSSEFrames(t, resp.Body)
	logFrames := countFrames(frames, "log")
	if logFrames != 3 {
		t.Fatalf("log frames = %d, want 3", logFrames)
	}
	// The newest fixture record (c3, from 5.6.7.8) must come first.
	if !strings.Contains(frames[0].data, "5.6.7.8") {
		t.Fatalf("first log frame = %q, want the newest record (5.6.7.8)", frames[0].data)
	}
	// limit (10) exceeds the 3-record fixture, so the walk exhausts the
	// journal: no continuation cursor frame is emitted.
	if countFrames(frames, "cursor") != 0 {
		t.Fatalf("expected no cursor frame when the journal end is reached")
	}
}

func TestDrainUnknownEventName(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	resp, err := http.Get(app.URL() + "/drain?event_name=bogus.events")
	if err != nil {
		t.Fatalf("GET /drain: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestOlderRequiresCursor(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	resp, err := http.Get(app.URL() + "/older?event_name=sshd.events")
	if err != nil {
		t.Fatalf("GET /older: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestOlderUnknownCursorIsBadRequest(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	resp, err := http.Get(app.URL() + "/older?event_name=sshd.events&cursor=does-not-exist")
	if err != nil {
		t.Fatalf("GET /older: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLiveStreamReceivesPublishedEvent(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	req, err := http.NewRequest(http.MethodGet, app.URL()+"/live?event_name=sshd.events", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /live: %v", err)
	}
	defer resp.Body.Close()

	// Give the subscription a moment to register before publishing.
	time.Sleep(50 * time.Millisecond)
	app.PublishLive(event.Event{
		Service:   event.ServiceSshd,
		EventType: event.EventType{Category: event.CategoryAuth, Subtype: event.AuthFailure},
		RawMsg:    event.PlainMsg("Failed password for root from 9.9.9.9 port 4 ssh2"),
	})

	scanner := bufio.NewScanner(resp.Body)
	deadline := time.Now().Add(5 * time.Second)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data:") && strings.Contains(line, "Sshd") {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for live event")
		}
	}
	t.Fatal("stream closed before an event arrived")
}

func TestLiveStreamQueryFilterMatchesRawMessage(t *testing.T) {
	app := NewTestApp(t)
	defer app.Close()

	req, err := http.NewRequest(http.MethodGet, app.URL()+"/live?event_name=sshd.events&query=wanted", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /live: %v", err)
	}
	defer resp.Body.Close()

	time.Sleep(50 * time.Millisecond)

	// A Structured RawMsg carries no Text, so a query filter can only match
	// via Event.RawMessage (the original MESSAGE field). seq tags each
	// event on the wire so the test can tell which one arrived.
	app.PublishLive(event.Event{
		Service:    event.ServiceSshd,
		EventType:  event.EventType{Category: event.CategoryAuth, Subtype: event.AuthFailure},
		RawMsg:     event.StructuredMsg(map[string]string{"user": "root"}),
		RawMessage: "totally unrelated line",
		Data:       event.Fields{}.Append("seq", "excluded"),
	})
	app.PublishLive(event.Event{
		Service:    event.ServiceSshd,
		EventType:  event.EventType{Category: event.CategoryAuth, Subtype: event.AuthFailure},
		RawMsg:     event.StructuredMsg(map[string]string{"user": "root"}),
		RawMessage: "this is the wanted line",
		Data:       event.Fields{}.Append("seq", "included"),
	})

	scanner := bufio.NewScanner(resp.Body)
	deadline := time.Now().Add(5 * time.Second)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data:") {
			if strings.Contains(line, "excluded") {
				t.Fatal("filter should have excluded the non-matching event")
			}
			if strings.Contains(line, "included") {
				return
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the matching live event")
		}
	}
	t.Fatal("stream closed before the matching event arrived")
}

type sseFrame struct {
	event string
	data  string
}

func readSSEFrames(t *testing.T, r io.Reader) []sseFrame {
	t.Helper()
	scanner := bufio.NewScanner(r)
	var frames []sseFrame
	var cur sseFrame
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			cur.event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			cur.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "":
			if cur.event != "" {
				frames = append(frames, cur)
			}
			cur = sseFrame{}
		}
	}
	return frames
}

func countFrames(frames []sseFrame, event string) int {
	n := 0
	for _, f := range frames {
		if f.event == event {
			n++
		}
	}
	return n
}
