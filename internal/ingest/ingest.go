package ingest

import (
	"context"
	"log/slog"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
	"github.com/vamsi200/drashta/internal/metrics"
)

// Dispatcher wires a Tailer's live stream into a Publisher, classifying
// each RawRecord exactly once as it arrives.
type Dispatcher struct {
	tailer    Tailer
	publisher Publisher
	classify  journal.ClassifyFunc
	logger    *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the Dispatcher's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Dispatcher. classify is invoked exactly once per RawRecord
// the journal tail yields.
func New(tailer Tailer, publisher Publisher, classify journal.ClassifyFunc, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		tailer:    tailer,
		publisher: publisher,
		classify:  classify,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run starts the journal tail and republishes every Event into the Hub
// until ctx is cancelled or the tail has closed both its event and error
// channels. Errors from the tail's error channel are logged, not fatal: the
// Reader itself retries transient journal errors with its own backoff.
func (d *Dispatcher) Run(ctx context.Context) error {
	events, errs := d.tailer.Tail(ctx, d.classify)

	d.logger.Info("ingest dispatcher started")
	defer d.logger.Info("ingest dispatcher stopped")

	eventsCh := events
	errsCh := errs

	for eventsCh != nil || errsCh != nil {
		select {
		case ev, ok := <-eventsCh:
			if !ok {
				eventsCh = nil
				continue
			}
			d.publish(ev)
		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			metrics.JournalReaderErrorsTotal.Inc()
			d.logger.Warn("journal reader error", "error", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return ctx.Err()
}

func (d *Dispatcher) publish(ev event.Event) {
	topic := ev.Service.Topic()
	d.publisher.Publish(topic, ev)
	metrics.EventsPublishedTotal.WithLabelValues(string(ev.Service), string(ev.EventType.Subtype)).Inc()
	d.logger.Debug("event published", "topic", topic, "service", ev.Service, "subtype", ev.EventType.Subtype)
}
