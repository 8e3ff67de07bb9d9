package hub

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vamsi200/drashta/internal/event"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	h := New()
	go h.Run()
	defer h.Stop()

	sub := h.Subscribe("sshd.events")
	if sub == nil {
		t.Fatal("Subscribe returned nil")
	}

	sub.Close()

	select {
	case _, ok := <-sub.Events():
		if ok {
			t.Error("expected Events channel to be closed after Close")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Events channel not closed after Close")
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	h := New()
	go h.Run()
	defer h.Stop()

	sub := h.Subscribe("sshd.events")
	defer sub.Close()

	ev := event.Event{Service: event.ServiceSshd}
	h.Publish("sshd.events", ev)

	select {
	case got := <-sub.Events():
		if got.Service != ev.Service {
			t.Errorf("got service %q, want %q", got.Service, ev.Service)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("timeout waiting for event")
	}
}

func TestPublishFansOutToAllTopic(t *testing.T) {
	h := New()
	go h.Run()
	defer h.Stop()

	scoped := h.Subscribe("sshd.events")
	defer scoped.Close()
	all := h.Subscribe(event.AllTopic)
	defer all.Close()

	ev := event.Event{Service: event.ServiceSshd}
	h.Publish("sshd.events", ev)

	var wg sync.WaitGroup
	for _, sub := range []*Subscription{scoped, all} {
		wg.Add(1)
		go func(sub *Subscription) {
			defer wg.Done()
			select {
			case <-sub.Events():
			case <-time.After(100 * time.Millisecond):
				t.Errorf("topic %q: timeout waiting for event", sub.Topic)
			}
		}(sub)
	}
	wg.Wait()
}

func TestPublishToMultipleSubscribers(t *testing.T) {
	h := New()
	go h.Run()
	defer h.Stop()

	const n = 5
	subs := make([]*Subscription, n)
	for i := range subs {
		subs[i] = h.Subscribe("sshd.events")
	}
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	h.Publish("sshd.events", event.Event{Service: event.ServiceSshd})

	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub *Subscription) {
			defer wg.Done()
			select {
			case <-sub.Events():
			case <-time.After(100 * time.Millisecond):
				t.Errorf("subscriber %d: timeout waiting for event", i)
			}
		}(i, sub)
	}
	wg.Wait()
}

type fakeLagObserver struct {
	mu     sync.Mutex
	drops  map[string]int
	counts map[string]int
}

func newFakeLagObserver() *fakeLagObserver {
	return &fakeLagObserver{drops: make(map[string]int), counts: make(map[string]int)}
}

func (f *fakeLagObserver) ObserveLag(topic string, _ uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drops[topic]++
}

func (f *fakeLagObserver) SetSubscriberCount(topic string, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[topic] = count
}

func (f *fakeLagObserver) dropsFor(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drops[topic]
}

func (f *fakeLagObserver) countFor(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[topic]
}

// TestLaggingSubscriberSeesNewestEvent exercises the hub's documented
// lagging-reader guarantee: with a capacity-4 subscriber channel and 10
// publishes with nobody draining, the subscriber ends up seeing the most
// recent events, not the oldest.
func TestLaggingSubscriberSeesNewestEvent(t *testing.T) {
	obs := newFakeLagObserver()
	h := New(WithSubscriberBuffer(4), WithLagObserver(obs))
	go h.Run()
	defer h.Stop()

	sub := h.Subscribe("sshd.events")
	defer sub.Close()

	for i := 0; i < 10; i++ {
		h.Publish("sshd.events", event.Event{Data: event.Fields{}.Append("seq", string(rune('0'+i)))})
	}

	// Give the hub loop time to process all ten publishes before reading.
	time.Sleep(50 * time.Millisecond)

	var last event.Event
	drained := 0
drainLoop:
	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				t.Fatal("subscriber channel closed unexpectedly")
			}
			last = ev
			drained++
		default:
			break drainLoop
		}
	}
	if drained == 0 {
		t.Fatal("expected at least one buffered event")
	}
	if drained > 4 {
		t.Fatalf("subscriber buffer capacity is 4, drained %d", drained)
	}
	seq, _ := last.Data.Get("seq")
	if seq != string(rune('0'+9)) {
		t.Errorf("expected the last drained event to be the newest (seq 9), got seq %q", seq)
	}
	if obs.dropsFor("sshd.events") == 0 {
		t.Error("expected lag drops to be observed for a full subscriber buffer")
	}
}

func TestPublishNeverBlocksWhenQueueFull(t *testing.T) {
	h := New()
	// Fill the internal publish queue without a running Run loop so no
	// consumer drains it.
	for i := 0; i < DefaultPublishBuffer+1; i++ {
		h.Publish("sshd.events", event.Event{})
	}
	// Publish must return even though the queue overflowed and the Hub's
	// own loop was never started to drain it.
}

func TestStopClosesSubscriberChannels(t *testing.T) {
	h := New()
	go h.Run()

	sub := h.Subscribe("sshd.events")
	h.Stop()

	select {
	case _, ok := <-sub.Events():
		if ok {
			t.Error("expected Events channel to be closed after Stop")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Events channel not closed after Stop")
	}
}

func TestTopicCount(t *testing.T) {
	h := New()
	go h.Run()
	defer h.Stop()

	if got := h.TopicCount("sshd.events"); got != 0 {
		t.Fatalf("expected 0 subscribers before Subscribe, got %d", got)
	}

	sub := h.Subscribe("sshd.events")
	defer sub.Close()

	deadline := time.After(100 * time.Millisecond)
	for {
		if h.TopicCount("sshd.events") == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected 1 subscriber, got %d", h.TopicCount("sshd.events"))
		case <-time.After(time.Millisecond):
		}
	}
}
