//go:build integration

// Package integration exercises internal/api.Server end-to-end over a fake
// journal.Reader, since these tests can't depend on a live systemd instance.
package integration

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/vamsi200/drashta/internal/api"
	"github.com/vamsi200/drashta/internal/classify"
	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/hub"
	"github.com/vamsi200/drashta/internal/ingest"
	"github.com/vamsi200/drashta/internal/journal"
	"github.com/vamsi200/drashta/internal/query"
)

// fakeReader is an in-memory journal.Reader stand-in built from a fixed,
// oldest-to-newest slice of RawRecords.
type fakeReader struct {
	records []journal.RawRecord
	tailCh  chan event.Event
	errCh   chan error
}

func newFakeReader(records []journal.RawRecord) *fakeReader {
	return &fakeReader{
		records: records,
		tailCh:  make(chan event.Event),
		errCh:   make(chan error),
	}
}

func (f *fakeReader) indexOf(cursor string) int {
	for i, r := range f.records {
		if r.Cursor == cursor {
			return i
		}
	}
	return -1
}

func (f *fakeReader) Tail(ctx context.Context, classify journal.ClassifyFunc) (<-chan event.Event, <-chan error) {
	return f.tailCh, f.errCh
}

func (f *fakeReader) RangeOlder(ctx context.Context, cursor string, limit int, match journal.MatchFunc) ([]event.Event, string, error) {
	start := len(f.records) - 1
	if cursor != "" {
		idx := f.indexOf(cursor)
		if idx < 0 {
			return nil, "", journal.ErrUnknownCursor
		}
		start = idx - 1
	}
	var matched []event.Event
	for i := start; i >= 0 && len(matched) < limit; i-- {
		if ev, ok := match(f.records[i]); ok {
			ev.Cursor = f.records[i].Cursor
			matched = append(matched, ev)
		}
	}
	next := ""
	if len(matched) > 0 && len(matched) == limit {
		next = matched[len(matched)-1].Cursor
	}
	return matched, next, nil
}

func (f *fakeReader) RangeNewer(ctx context.Context, cursor string, limit int, match journal.MatchFunc) ([]event.Event, string, error) {
	start := 0
	if cursor != "" {
		idx := f.indexOf(cursor)
		if idx < 0 {
			return nil, "", journal.ErrUnknownCursor
		}
		start = idx + 1
	}
	var matched []event.Event
	for i := start; i < len(f.records) && len(matched) < limit; i++ {
		if ev, ok := match(f.records[i]); ok {
			ev.Cursor = f.records[i].Cursor
			matched = append(matched, ev)
		}
	}
	next := ""
	if len(matched) > 0 && len(matched) == limit {
		next = matched[len(matched)-1].Cursor
	}
	return matched, next, nil
}

// rec builds a RawRecord fixture.
func rec(cursor, identifier, message string) journal.RawRecord {
	return journal.RawRecord{
		Cursor: cursor,
		Fields: map[string]string{
			journal.FieldSyslogIdentifier: identifier,
			journal.FieldMessage:          message,
		},
	}
}

// TestApp wires a Server against a fakeReader for end-to-end HTTP tests.
type TestApp struct {
	Server *httptest.Server
	Hub    *hub.Hub
	Reader *fakeReader

	cleanup func()
}

// NewTestApp builds a TestApp with a fixed set of sshd records.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	reader := newFakeReader([]journal.RawRecord{
		rec("c1", "sshd", "Accepted publickey for alice from 10.0.0.1 port 1 ssh2"),
		rec("c2", "sshd", "Failed password for root from 1.2.3.4 port 2 ssh2"),
		rec("c3", "sshd", "Failed password for root from 5.6.7.8 port 3 ssh2"),
	})

	router := classify.NewRouter()
	engine := query.New(reader, router)

	h := hub.New()
	go h.Run()

	dispatcher := ingest.New(reader, h, engine.ClassifyLive)
	ctx, cancelDispatch := context.WithCancel(context.Background())
	go dispatcher.Run(ctx)

	server := api.NewServer("127.0.0.1:0", engine, h)
	ts := httptest.NewServer(server.Handler())

	cleanup := func() {
		ts.Close()
		cancelDispatch()
		h.Stop()
	}

	return &TestApp{Server: ts, Hub: h, Reader: reader, cleanup: cleanup}
}

// Close releases all resources.
func (a *TestApp) Close() {
	if a.cleanup != nil {
		a.cleanup()
	}
}

// URL returns the base URL of the test server.
func (a *TestApp) URL() string {
	return a.Server.URL
}

// PublishLive pushes ev straight onto the fake Tail channel as if the
// journal had just produced it.
func (a *TestApp) PublishLive(ev event.Event) {
	a.Reader.tailCh <- ev
}
