package query

import (
	"context"
	"testing"

	"github.com/vamsi200/drashta/internal/classify"
	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

// fakeReader is an in-memory stand-in for journal.Reader, built from a
// fixed slice of RawRecords ordered oldest-to-newest, the way the real
// journal orders entries within a boot.
type fakeReader struct {
	records []journal.RawRecord // oldest to newest
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
	events := make(chan event.Event)
	errs := make(chan error)
	close(events)
	close(errs)
	return events, errs
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

func rec(cursor, identifier, message string) journal.RawRecord {
	return journal.RawRecord{
		Cursor: cursor,
		Fields: map[string]string{
			journal.FieldSyslogIdentifier: identifier,
			journal.FieldMessage:          message,
		},
	}
}

func testReader() *fakeReader {
	return &fakeReader{records: []journal.RawRecord{
		rec("c1", "sshd", "Accepted publickey for alice from 10.0.0.1 port 1 ssh2"),
		rec("c2", "sshd", "Failed password for root from 1.2.3.4 port 2 ssh2"),
		rec("c3", "sudo", "alice : TTY=pts/0 ; PWD=/home/alice ; USER=root ; COMMAND=/bin/ls"),
		rec("c4", "sshd", "Failed password for root from 5.6.7.8 port 3 ssh2"),
	}}
}

func TestEngineDrainNewestFirst(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	events, cursor, err := e.Drain(context.Background(), "sshd.events", 100, Filter{})
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	if events[0].Cursor != "c4" || events[2].Cursor != "c1" {
		t.Fatalf("cursors = %q..%q, want c4..c1 (newest-first order)", events[0].Cursor, events[2].Cursor)
	}
	if events[0].RawMsg.Text == "" && events[0].RawMsg.Structured == nil {
		t.Fatalf("expected raw_msg on first event")
	}
	// limit (100) exceeds available records, so the walk exhausts the
	// journal: per the end-of-stream rule, no continuation cursor is
	// emitted even though the batch is non-empty.
	if cursor != "" {
		t.Fatalf("cursor = %q, want empty (journal end reached)", cursor)
	}
}

func TestEngineUnknownTopic(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	_, _, err := e.Drain(context.Background(), "nonexistent.events", 10, Filter{})
	if err != ErrUnknownTopic {
		t.Fatalf("err = %v, want ErrUnknownTopic", err)
	}
}

func TestEngineEventTypeFilter(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	events, _, err := e.Drain(context.Background(), "all.events", 100, Filter{EventTypes: []string{"Auth::Failure"}})
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	for _, ev := range events {
		if ev.EventType.Subtype != event.AuthFailure {
			t.Errorf("subtype = %v, want Failure", ev.EventType.Subtype)
		}
	}
}

func TestEnginePreviousReversedToNewestFirst(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	events, cursor, err := e.Previous(context.Background(), "sshd.events", "c1", 100, Filter{})
	if err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Same end-of-stream rule applies in the forward direction.
	if cursor != "" {
		t.Fatalf("cursor = %q, want empty (journal end reached)", cursor)
	}
	if events[0].Cursor != "c4" {
		t.Fatalf("events[0].Cursor = %q, want c4 (newest-first order)", events[0].Cursor)
	}
}

func TestEngineDrainCursorEmittedWhenLimitReachedBeforeJournalEnd(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	events, cursor, err := e.Drain(context.Background(), "sshd.events", 2, Filter{})
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// limit was satisfied before exhausting the underlying records, so a
	// continuation cursor (oldest of this batch) must be emitted.
	if cursor == "" {
		t.Fatalf("cursor is empty, want the oldest-of-batch continuation cursor")
	}
	if cursor != events[len(events)-1].Cursor {
		t.Fatalf("cursor = %q, want oldest-of-batch %q", cursor, events[len(events)-1].Cursor)
	}
}

func TestEngineQuerySubstringFilter(t *testing.T) {
	e := New(testReader(), classify.NewRouter())
	events, _, err := e.Drain(context.Background(), "sshd.events", 100, Filter{Query: "root"})
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
}
