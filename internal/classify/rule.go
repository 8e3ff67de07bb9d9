// Package classify turns RawRecords into classified Events using
// per-service, data-driven rule tables: an ordered list of regexes, each
// naming the Category/Subtype it produces and whose named capture groups
// become the Event's data fields, first-match-wins, with a mandatory
// fallback so no record is ever silently dropped.
package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
	"github.com/vamsi200/drashta/internal/journal"
)

// Rule is one named pattern within a Classifier's table. Pattern is matched
// against the record's MESSAGE field; its named capture groups (e.g.
// `(?P<user>\w+)`) become data keys directly, in the order they appear in
// the pattern. A capture group that does not participate in the match
// (optional group, no match) contributes nothing.
type Rule struct {
	Category event.Category
	Subtype  event.Subtype
	Pattern  *regexp.Regexp
}

// Classifier is one service's rule table plus its fallback subtype for
// records none of its rules match.
type Classifier struct {
	Service          event.Service
	Rules            []Rule
	FallbackCategory event.Category
	Fallback         event.Subtype
}

// Classify implements journal.ClassifyFunc: it returns exactly one Event
// for every RawRecord, using the first matching rule or the fallback.
func (c Classifier) Classify(r journal.RawRecord) event.Event {
	msg := r.Message()
	for _, rule := range c.Rules {
		if m := rule.Pattern.FindStringSubmatch(msg); m != nil {
			return c.build(r, rule.Category, rule.Subtype, fieldsFromMatch(rule.Pattern, m))
		}
	}
	return c.build(r, c.FallbackCategory, c.Fallback, nil)
}

// Match implements journal.MatchFunc: identical classification to
// Classify, reporting true unconditionally (service-level filtering
// happens before a Classifier is even selected; see Router).
func (c Classifier) Match(r journal.RawRecord) (event.Event, bool) {
	return c.Classify(r), true
}

func (c Classifier) build(r journal.RawRecord, category event.Category, subtype event.Subtype, data event.Fields) event.Event {
	return event.Event{
		Timestamp: r.Time().Format("Jan 02 15:04:05"),
		Service:   c.Service,
		EventType: event.EventType{Category: category, Subtype: subtype},
		Data:      data,
		RawMsg:    rawMsgFor(r),
	}
}

// rawMsgFor builds the RawMsg variant for a record: Structured when the
// record carries fields beyond the well-known ones Drashta already reads,
// Plain otherwise.
func rawMsgFor(r journal.RawRecord) event.RawMsg {
	extra := make(map[string]string)
	for k, v := range r.Fields {
		switch k {
		case journal.FieldMessage, journal.FieldSystemdUnit, journal.FieldSyslogIdentifier:
			continue
		}
		if len(k) > 0 && k[0] == '_' {
			// Journal-internal metadata fields (_PID, _BOOT_ID, ...) are not
			// application structure; they do not make a record "structured".
			continue
		}
		extra[k] = v
	}
	if len(extra) == 0 {
		return event.PlainMsg(r.Message())
	}
	return event.StructuredMsg(extra)
}

// fieldsFromMatch lifts a regex's named capture groups into an ordered
// Fields value, preserving the order the groups appear in the pattern.
func fieldsFromMatch(pattern *regexp.Regexp, m []string) event.Fields {
	var fields event.Fields
	for i, name := range pattern.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		if m[i] == "" {
			continue
		}
		fields = fields.Append(name, m[i])
	}
	return fields
}
