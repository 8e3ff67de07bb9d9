// Package hub provides a per-topic, bounded-channel broadcast fan-out for
// live Event subscribers, adapted from the single-goroutine-ownership Hub
// pattern: one internal goroutine owns all subscriber state, and
// register/unregister/publish all flow through channels into it. The
// subscriber map is still guarded by an RWMutex so that delivery snapshots
// and TopicCount can read it.
package hub

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vamsi200/drashta/internal/event"
)

const (
	// DefaultSubscriberBuffer is the per-subscriber channel capacity. The
	// spec suggests 1024 messages per topic per subscriber.
	DefaultSubscriberBuffer = 1024

	// DefaultPublishBuffer sizes the hub's internal publish queue, which
	// decouples the Ingest dispatcher from per-subscriber fan-out latency.
	DefaultPublishBuffer = 256
)

// LagObserver is notified when a subscriber's channel overflows and its
// oldest queued event is dropped to make room for a new one. Implemented by
// internal/metrics; kept as an interface here so hub has no Prometheus
// dependency of its own.
type LagObserver interface {
	ObserveLag(topic string, subscriberID uuid.UUID)
	SetSubscriberCount(topic string, count int)
}

type noopLagObserver struct{}

func (noopLagObserver) ObserveLag(string, uuid.UUID)   {}
func (noopLagObserver) SetSubscriberCount(string, int) {}

// Subscription is a live consumer of one topic, owning a bounded receive
// channel into the Hub. Its lifetime is bounded by the caller: Close
// unregisters it and closes its channel.
type Subscription struct {
	ID    uuid.UUID
	Topic string

	events chan event.Event
	hub    *Hub
}

// Events returns the channel of events delivered to this subscription.
func (s *Subscription) Events() <-chan event.Event {
	return s.events
}

// Close unregisters the subscription from its Hub. Safe to call once; the
// Hub closes the underlying channel after removing it from the topic map.
func (s *Subscription) Close() {
	s.hub.unsubscribe(s)
}

type publishMsg struct {
	topic string
	ev    event.Event
}

// Hub owns every topic's subscriber set and serializes all mutation through
// a single goroutine (Run). Publish, Subscribe, and the returned
// Subscription's Close are all safe to call concurrently from any
// goroutine; none of them block on subscriber delivery.
type Hub struct {
	register   chan *Subscription
	unregister chan *Subscription
	publish    chan publishMsg
	stop       chan struct{}
	stopped    chan struct{}
	stopOnce   sync.Once

	subscriberBuffer int
	logger           *slog.Logger
	lag              LagObserver

	mu     sync.RWMutex
	topics map[string]map[uuid.UUID]*Subscription
}

// Option configures a Hub.
type Option func(*Hub)

// WithSubscriberBuffer overrides the per-subscriber channel capacity.
func WithSubscriberBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.subscriberBuffer = n
		}
	}
}

// WithLogger sets the Hub's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithLagObserver wires a lag counter (internal/metrics) into the Hub.
func WithLagObserver(obs LagObserver) Option {
	return func(h *Hub) {
		if obs != nil {
			h.lag = obs
		}
	}
}

// New creates a Hub. Call Run in its own goroutine before Subscribe/Publish
// are used.
func New(opts ...Option) *Hub {
	h := &Hub{
		register:         make(chan *Subscription),
		unregister:        make(chan *Subscription),
		publish:           make(chan publishMsg, DefaultPublishBuffer),
		stop:              make(chan struct{}),
		stopped:           make(chan struct{}),
		subscriberBuffer:  DefaultSubscriberBuffer,
		logger:            slog.Default(),
		lag:               noopLagObserver{},
		topics:            make(map[string]map[uuid.UUID]*Subscription),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run drives the Hub's event loop until Stop is called. Intended to run in
// its own goroutine for the lifetime of the server.
func (h *Hub) Run() {
	defer close(h.stopped)

	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			subs, ok := h.topics[sub.Topic]
			if !ok {
				subs = make(map[uuid.UUID]*Subscription)
				h.topics[sub.Topic] = subs
			}
			subs[sub.ID] = sub
			count := len(subs)
			h.mu.Unlock()
			h.lag.SetSubscriberCount(sub.Topic, count)
			h.logger.Debug("subscriber registered", "topic", sub.Topic, "subscriber_id", sub.ID)

		case sub := <-h.unregister:
			h.mu.Lock()
			var count int
			if subs, ok := h.topics[sub.Topic]; ok {
				if _, present := subs[sub.ID]; present {
					delete(subs, sub.ID)
					close(sub.events)
				}
				count = len(subs)
			}
			h.mu.Unlock()
			h.lag.SetSubscriberCount(sub.Topic, count)
			h.logger.Debug("subscriber unregistered", "topic", sub.Topic, "subscriber_id", sub.ID)

		case msg := <-h.publish:
			h.deliver(msg.topic, msg.ev)

		case <-h.stop:
			h.mu.Lock()
			for _, subs := range h.topics {
				for _, sub := range subs {
					close(sub.events)
				}
			}
			h.topics = make(map[string]map[uuid.UUID]*Subscription)
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) deliver(topic string, ev event.Event) {
	h.mu.RLock()
	subs := h.topics[topic]
	// Snapshot subscriber list under the read lock; channel sends happen
	// outside it since channels themselves need no external locking.
	targets := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	for _, sub := range targets {
		trySend(sub.events, ev, func() { h.lag.ObserveLag(topic, sub.ID) })
	}
}

// trySend delivers ev to ch without blocking. If ch is full, the oldest
// queued event is discarded to make room (lagging-reader semantics), and
// onDrop is invoked. A bounded number of eviction attempts guards against a
// concurrent receiver draining ch between the drop and the retry.
func trySend(ch chan event.Event, ev event.Event, onDrop func()) {
	for attempt := 0; attempt < 2; attempt++ {
		select {
		case ch <- ev:
			return
		default:
		}
		select {
		case <-ch:
			onDrop()
		default:
			// A concurrent receiver won the race and drained it; just retry the send.
		}
	}
	// Channel is being drained exactly as fast as we retry; give up this
	// round rather than spin. The subscriber will catch the next publish.
}

// Stop halts the Hub's event loop and closes every subscriber channel.
// Blocks until the loop has exited. Safe to call multiple times.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
	<-h.stopped
}

// Subscribe registers a new Subscription on topic. Topic creation is lazy:
// subscribing to a topic nobody has published to yet just creates an empty
// set. Topics are never removed for the Hub's lifetime.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		ID:     uuid.New(),
		Topic:  topic,
		events: make(chan event.Event, h.subscriberBuffer),
		hub:    h,
	}
	select {
	case h.register <- sub:
	case <-h.stopped:
		close(sub.events)
	}
	return sub
}

func (h *Hub) unsubscribe(sub *Subscription) {
	select {
	case h.unregister <- sub:
	case <-h.stopped:
	}
}

// Publish delivers ev to topic's subscribers and, unless topic is already
// event.AllTopic, duplicates the publish onto event.AllTopic so its
// subscribers see the union of every service's stream in publication
// order. Never blocks the caller: if the Hub's internal publish queue is
// full, the publish is dropped rather than backing up into the caller (the
// Ingest dispatcher, which must never stall on a slow Hub loop).
func (h *Hub) Publish(topic string, ev event.Event) {
	h.enqueue(topic, ev)
	if topic != event.AllTopic {
		h.enqueue(event.AllTopic, ev)
	}
}

func (h *Hub) enqueue(topic string, ev event.Event) {
	select {
	case h.publish <- publishMsg{topic: topic, ev: ev}:
	case <-h.stopped:
	default:
		h.logger.Warn("publish queue full, event dropped", "topic", topic)
	}
}

// TopicCount reports the number of subscribers currently on topic, for
// metrics and diagnostics.
func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
