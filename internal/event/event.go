// Package event provides the shared Event model for Drashta.
// This package is used by the classify, hub, query, and api packages.
package event

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is the top-level classification of an Event. The set is closed:
// clients may rely on it being fixed between releases.
type Category string

// Declared categories, closed set.
const (
	CategoryAuth     Category = "Auth"
	CategoryUser     Category = "User"
	CategoryPackage  Category = "Package"
	CategoryNetwork  Category = "Network"
	CategoryFirewall Category = "Firewall"
	CategoryKernel   Category = "Kernel"
	CategoryConfig   Category = "Config"
	CategorySystem   Category = "System"
)

// Subtype is an enumerated symbol within a Category. Subtype values are not
// globally unique across categories (e.g. "Other", "Info", "Warning" recur
// in several); a Subtype is only meaningful paired with its Category.
type Subtype string

// SubtypeOther is the shared fallback subtype, valid in every category.
const SubtypeOther Subtype = "Other"

// Service names the originating daemon family. It drives topic routing; see
// Service.Topic.
type Service string

// Declared services, closed set. ServiceSystem is the generic catch-all for
// records whose SYSLOG_IDENTIFIER/_SYSTEMD_UNIT matches none of the other
// eight; it is the Service-level counterpart of the System category.
const (
	ServiceSshd           Service = "Sshd"
	ServiceSudo           Service = "Sudo"
	ServiceLogin          Service = "Login"
	ServiceKernel         Service = "Kernel"
	ServiceConfigChange   Service = "ConfigChange"
	ServicePkgManager     Service = "PkgManager"
	ServiceFirewalld      Service = "Firewalld"
	ServiceNetworkManager Service = "NetworkManager"
	ServiceSystem         Service = "System"
)

// AllTopic is the synthetic topic that fans in every service's events.
const AllTopic = "all.events"

// Topic returns the per-service topic name: "{service.lowercased}.events".
func (s Service) Topic() string {
	return asciiLower(string(s)) + ".events"
}

func asciiLower(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// EventType is the tagged {Category, Subtype} variant. It marshals as a
// single-key JSON object whose key names the Category and whose value names
// the Subtype, e.g. {"Auth":"Failure"}.
type EventType struct {
	Category Category
	Subtype  Subtype
}

// MarshalJSON implements json.Marshaler.
func (t EventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[Category]Subtype{t.Category: t.Subtype})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var m map[Category]Subtype
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("event_type: expected exactly one key, got %d", len(m))
	}
	for c, s := range m {
		t.Category = c
		t.Subtype = s
	}
	return nil
}

// Field is a single key/value pair in an ordered Fields sequence.
type Field struct {
	Key   string
	Value string
}

// Fields is an order-preserving key/value mapping. Unlike a bare
// map[string]string (whose JSON encoding always sorts keys), Fields
// marshals in append order, so a classifier rule's capture order survives
// onto the wire.
type Fields []Field

// Append adds a key/value pair to the end of Fields.
func (f Fields) Append(key, value string) Fields {
	return append(f, Field{Key: key, Value: value})
}

// Get returns the value for the first matching key, and whether it was found.
func (f Fields) Get(key string) (string, bool) {
	for _, kv := range f {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler, preserving insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Go's encoding/json does not
// preserve object key order on decode; round-tripped Fields end up ordered
// however map iteration happens to emit them. Drashta never decodes Fields
// on the serving path, only in tests, so this is acceptable.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Fields, 0, len(m))
	for k, v := range m {
		out = append(out, Field{Key: k, Value: v})
	}
	*f = out
	return nil
}

// RawMsgKind tags the two shapes a RawMsg can take.
type RawMsgKind string

const (
	RawMsgPlain      RawMsgKind = "Plain"
	RawMsgStructured RawMsgKind = "Structured"
)

// RawMsg is the tagged variant over the original journal record's message:
// Structured{key->value} when the record carried structured fields beyond
// MESSAGE, or Plain{text} for the raw MESSAGE line.
type RawMsg struct {
	Kind       RawMsgKind
	Text       string
	Structured map[string]string
}

// PlainMsg builds a Plain RawMsg.
func PlainMsg(text string) RawMsg {
	return RawMsg{Kind: RawMsgPlain, Text: text}
}

// StructuredMsg builds a Structured RawMsg.
func StructuredMsg(fields map[string]string) RawMsg {
	return RawMsg{Kind: RawMsgStructured, Structured: fields}
}

type rawMsgWire struct {
	Type  RawMsgKind      `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (m RawMsg) MarshalJSON() ([]byte, error) {
	var value json.RawMessage
	var err error
	switch m.Kind {
	case RawMsgStructured:
		value, err = json.Marshal(m.Structured)
	default:
		value, err = json.Marshal(m.Text)
	}
	if err != nil {
		return nil, err
	}
	kind := m.Kind
	if kind == "" {
		kind = RawMsgPlain
	}
	return json.Marshal(rawMsgWire{Type: kind, Value: value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *RawMsg) UnmarshalJSON(data []byte) error {
	var wire rawMsgWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.Kind = wire.Type
	switch wire.Type {
	case RawMsgStructured:
		return json.Unmarshal(wire.Value, &m.Structured)
	default:
		return json.Unmarshal(wire.Value, &m.Text)
	}
}

// Event is the canonical classified record produced by a Classifier from
// exactly one RawRecord.
type Event struct {
	Timestamp string    `json:"timestamp"`
	Service   Service   `json:"service"`
	EventType EventType `json:"event_type"`
	Data      Fields    `json:"data"`
	RawMsg    RawMsg    `json:"raw_msg"`

	// Cursor is the opaque journal token of the entry this Event was
	// classified from. It never appears in the SSE `data:` JSON payload —
	// it rides in its own `cursor:` frame — so its `json:"-"` tag excludes
	// it from marshaling.
	Cursor string `json:"-"`

	// RawMessage is the source record's raw MESSAGE field, kept alongside
	// the classified Event so a substring query filter can match against it
	// even when RawMsg itself is Structured (and so carries no Text). Not
	// part of the wire payload.
	RawMessage string `json:"-"`
}

// MarshalJSON implements json.Marshaler, omitting Cursor from the wire
// payload.
func (e Event) MarshalJSON() ([]byte, error) {
	type wire Event
	return json.Marshal(wire(e))
}
