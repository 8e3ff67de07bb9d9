// Package query translates the HTTP historical-query routes into Journal
// Reader primitives, classifying and filtering records as they're walked.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/vamsi200/drashta/internal/classify"
	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

// ErrUnknownTopic is returned when event_name names neither a known
// service's topic nor the synthetic all.events topic.
var ErrUnknownTopic = fmt.Errorf("query: unknown event_name")

// Filter narrows a historical walk beyond its topic: event_type values
// (either "Category::Subtype" or a bare subtype name) and a case-sensitive
// substring match against the raw MESSAGE.
type Filter struct {
	EventTypes []string
	Query      string
}

// Matches reports whether ev (classified from a record whose raw MESSAGE was
// rawMessage) passes this Filter. Exported so the live /live handler can
// apply the same event_type/query filtering the historical endpoints use,
// without going through a journal.MatchFunc.
func (f Filter) Matches(ev event.Event, rawMessage string) bool {
	return f.matches(ev, rawMessage)
}

func (f Filter) matches(ev event.Event, rawMessage string) bool {
	if f.Query != "" && !strings.Contains(rawMessage, f.Query) {
		return false
	}
	if len(f.EventTypes) == 0 {
		return true
	}
	for _, want := range f.EventTypes {
		if subtypeMatches(ev.EventType, want) {
			return true
		}
	}
	return false
}

func subtypeMatches(et event.EventType, filter string) bool {
	if category, subtype, ok := strings.Cut(filter, "::"); ok {
		return string(et.Category) == category && string(et.Subtype) == subtype
	}
	return string(et.Subtype) == filter
}

// Reader is the subset of journal.Reader's surface the Engine needs. It
// exists so tests (and test/integration's fake journal) can substitute an
// in-memory implementation without a live systemd instance.
type Reader interface {
	Tail(ctx context.Context, classify journal.ClassifyFunc) (<-chan event.Event, <-chan error)
	RangeOlder(ctx context.Context, cursor string, limit int, match journal.MatchFunc) ([]event.Event, string, error)
	RangeNewer(ctx context.Context, cursor string, limit int, match journal.MatchFunc) ([]event.Event, string, error)
}

// Engine wraps a Reader and classify.Router to serve the four query
// endpoints.
type Engine struct {
	reader Reader
	router *classify.Router
}

// New builds an Engine over reader and router.
func New(reader Reader, router *classify.Router) *Engine {
	return &Engine{reader: reader, router: router}
}

// ResolveTopic reports whether eventName names a known topic (a service's
// topic or the synthetic all.events), for callers that only need to
// validate/subscribe (e.g. the /live handler) rather than walk the journal.
func (e *Engine) ResolveTopic(eventName string) (topic string, ok bool) {
	if eventName == event.AllTopic {
		return event.AllTopic, true
	}
	for _, svc := range e.router.Services() {
		if svc.Topic() == eventName {
			return eventName, true
		}
	}
	return "", false
}

// resolveTopic maps an event_name to the Service it should be scoped to. It
// reports isAll=true for all.events (no service scoping) and returns
// ErrUnknownTopic if the name is unresolvable.
func (e *Engine) resolveTopic(eventName string) (service event.Service, isAll bool, err error) {
	if eventName == event.AllTopic {
		return "", true, nil
	}
	for _, svc := range e.router.Services() {
		if svc.Topic() == eventName {
			return svc, false, nil
		}
	}
	return "", false, ErrUnknownTopic
}

func (e *Engine) matchFunc(eventName string, filter Filter) (journal.MatchFunc, error) {
	service, isAll, err := e.resolveTopic(eventName)
	if err != nil {
		return nil, err
	}
	return func(rec journal.RawRecord) (event.Event, bool) {
		ev := e.router.Classify(rec)
		if !isAll && ev.Service != service {
			return event.Event{}, false
		}
		if !filter.matches(ev, rec.Message()) {
			return event.Event{}, false
		}
		return ev, true
	}, nil
}

// Drain serves GET /drain: range_older(None, limit) then classify, newest
// to oldest.
func (e *Engine) Drain(ctx context.Context, eventName string, limit int, filter Filter) ([]event.Event, string, error) {
	match, err := e.matchFunc(eventName, filter)
	if err != nil {
		return nil, "", err
	}
	return e.reader.RangeOlder(ctx, "", limit, match)
}

// Older serves GET /older: range_older(cursor, limit) then classify,
// strictly older than cursor, newest to oldest.
func (e *Engine) Older(ctx context.Context, eventName, cursor string, limit int, filter Filter) ([]event.Event, string, error) {
	match, err := e.matchFunc(eventName, filter)
	if err != nil {
		return nil, "", err
	}
	return e.reader.RangeOlder(ctx, cursor, limit, match)
}

// Previous serves GET /previous: range_newer(cursor, limit) then classify,
// fetched oldest-to-newest and reversed before return so the caller always
// sees newest-first visual order, matching Drain/Older. The continuation
// cursor is the newest entry's cursor (the forward continuation point),
// computed before reversing.
func (e *Engine) Previous(ctx context.Context, eventName, cursor string, limit int, filter Filter) ([]event.Event, string, error) {
	match, err := e.matchFunc(eventName, filter)
	if err != nil {
		return nil, "", err
	}
	events, nextCursor, err := e.reader.RangeNewer(ctx, cursor, limit, match)
	if err != nil {
		return nil, "", err
	}
	reverse(events)
	return events, nextCursor, nil
}

func reverse(events []event.Event) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}

// ClassifyLive implements journal.ClassifyFunc for the live tail path,
// reusing the same Router every historical query uses.
func (e *Engine) ClassifyLive(rec journal.RawRecord) event.Event {
	return e.router.Classify(rec)
}
