// Package ingest drives the long-lived Journal Reader tail and republishes
// every classified Event into the Hub, one topic per service plus the
// synthetic all.events fan-in.
package ingest

import (
	"context"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

// Tailer abstracts journal.Reader's live-tail primitive so the Dispatcher
// can be driven by a fake in tests.
type Tailer interface {
	Tail(ctx context.Context, classify journal.ClassifyFunc) (<-chan event.Event, <-chan error)
}

// Publisher abstracts hub.Hub's publish surface.
type Publisher interface {
	Publish(topic string, ev event.Event)
}
