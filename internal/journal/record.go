// Package journal wraps the native systemd journal API (via
// github.com/coreos/go-systemd/v22/sdjournal) behind the three read
// primitives Drashta's pipeline needs: a live tail, and two bounded,
// cursor-anchored historical walks.
package journal

import (
	"time"

	"github.com/coreos/go-systemd/v22/sdjournal"
)

// Well-known journal field names Drashta reads from every record.
const (
	FieldMessage          = "MESSAGE"
	FieldSystemdUnit      = "_SYSTEMD_UNIT"
	FieldSyslogIdentifier = "SYSLOG_IDENTIFIER"
)

// RawRecord is one journal entry lifted to a language-neutral shape: a
// mapping from field name to string value, the realtime timestamp in
// microseconds since epoch, and the journal's own cursor token for that
// entry.
type RawRecord struct {
	Fields            map[string]string
	RealtimeTimestamp uint64
	Cursor            string
}

// Message returns the MESSAGE field, or "" if absent.
func (r RawRecord) Message() string {
	return r.Fields[FieldMessage]
}

// Identifier returns SYSLOG_IDENTIFIER, falling back to _SYSTEMD_UNIT, per
// the Classifier Router's dispatch rule (spec §4.2).
func (r RawRecord) Identifier() string {
	if id := r.Fields[FieldSyslogIdentifier]; id != "" {
		return id
	}
	return r.Fields[FieldSystemdUnit]
}

// Time returns the record's realtime timestamp as a time.Time in the host's
// local timezone.
func (r RawRecord) Time() time.Time {
	return time.UnixMicro(int64(r.RealtimeTimestamp)).Local()
}

// recordFromEntry converts a native sdjournal.JournalEntry into a RawRecord.
func recordFromEntry(entry *sdjournal.JournalEntry) RawRecord {
	return RawRecord{
		Fields:            entry.Fields,
		RealtimeTimestamp: entry.RealtimeTimestamp,
		Cursor:            entry.Cursor,
	}
}
