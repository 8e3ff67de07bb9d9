package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

type fakeTailer struct {
	events chan event.Event
	errs   chan error
}

func (f *fakeTailer) Tail(ctx context.Context, classify journal.ClassifyFunc) (<-chan event.Event, <-chan error) {
	return f.events, f.errs
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []publishedEvent
}

type publishedEvent struct {
	topic string
	ev    event.Event
}

func (p *recordingPublisher) Publish(topic string, ev event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, publishedEvent{topic: topic, ev: ev})
}

func (p *recordingPublisher) snapshot() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.published))
	copy(out, p.published)
	return out
}

func TestDispatcherPublishesToServiceTopic(t *testing.T) {
	tailer := &fakeTailer{events: make(chan event.Event, 4), errs: make(chan error, 1)}
	publisher := &recordingPublisher{}

	d := New(tailer, publisher, func(journal.RawRecord) event.Event {
		return event.Event{Service: event.ServiceSshd}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	tailer.events <- event.Event{Service: event.ServiceSshd}
	close(tailer.events)
	close(tailer.errs)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not exit after channels closed")
	}
	cancel()

	published := publisher.snapshot()
	if len(published) != 1 {
		t.Fatalf("len(published) = %d, want 1", len(published))
	}
	if published[0].topic != "sshd.events" {
		t.Fatalf("topic = %q, want sshd.events", published[0].topic)
	}
}

func TestDispatcherExitsOnContextCancel(t *testing.T) {
	tailer := &fakeTailer{events: make(chan event.Event), errs: make(chan error)}
	publisher := &recordingPublisher{}
	d := New(tailer, publisher, func(journal.RawRecord) event.Event { return event.Event{} })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected context.Canceled, got nil")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not exit after context cancel")
	}
}
