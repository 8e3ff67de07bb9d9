package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/coreos/go-systemd/v22/sdjournal"

	"github.com/vamsi200/drashta/internal/event"
)

// Default tuning, overridable via Option.
const (
	// DefaultMaxWalkTime bounds a single RangeOlder/RangeNewer call's wall
	// clock time, protecting against a filter that matches nothing across
	// a huge journal (spec §5).
	DefaultMaxWalkTime = 30 * time.Second

	// DefaultWaitTimeout is how long Tail blocks on the journal's wait
	// primitive between polls when idle.
	DefaultWaitTimeout = 1 * time.Second

	// TailEventBuffer and TailErrorBuffer size Tail's output channels.
	TailEventBuffer = 256
	TailErrorBuffer = 16
)

// ErrWalkTimeout is returned when a historical walk exceeds its wall-clock
// ceiling without satisfying its limit.
var ErrWalkTimeout = errors.New("journal: walk exceeded time ceiling")

// ClassifyFunc classifies a RawRecord into an Event unconditionally. Used by
// Tail, which must classify and publish every live record (filtering, if
// any, happens at the Hub subscription level, not here).
type ClassifyFunc func(RawRecord) event.Event

// MatchFunc classifies a RawRecord and reports whether it passes the
// caller's filters. Used by RangeOlder/RangeNewer, which only yield
// matching records (spec §4.1: "filterable by a set of service predicates
// ... and by a substring query").
type MatchFunc func(RawRecord) (event.Event, bool)

// Reader wraps a native journal handle. All state that touches the handle
// lives behind this type; every other component receives RawRecord/Event
// values by message passing (spec §5).
type Reader struct {
	journal     *sdjournal.Journal
	logger      *slog.Logger
	maxWalkTime time.Duration
	waitTimeout time.Duration
	rng         *rand.Rand
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the Reader's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxWalkTime overrides the historical-walk wall-clock ceiling.
func WithMaxWalkTime(d time.Duration) Option {
	return func(r *Reader) {
		if d > 0 {
			r.maxWalkTime = d
		}
	}
}

// WithWaitTimeout overrides Tail's idle poll interval.
func WithWaitTimeout(d time.Duration) Option {
	return func(r *Reader) {
		if d > 0 {
			r.waitTimeout = d
		}
	}
}

// Open opens the local systemd journal and returns a Reader positioned
// nowhere in particular; callers must Tail/RangeOlder/RangeNewer to
// position it.
func Open(opts ...Option) (*Reader, error) {
	j, err := sdjournal.NewJournal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJournalUnavailable, err)
	}
	r := &Reader{
		journal:     j,
		logger:      slog.Default(),
		maxWalkTime: DefaultMaxWalkTime,
		waitTimeout: DefaultWaitTimeout,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the native journal handle.
func (r *Reader) Close() error {
	return r.journal.Close()
}

// Tail produces a lazy, infinite stream of classified Events starting at
// "now" (the tail of the journal), per spec §4.1. It runs until ctx is
// cancelled or a fatal journal error occurs. Transient advance errors are
// retried with bounded, full-jitter backoff; the stream resumes from the
// journal's own position (the native handle tracks it, so no cursor
// bookkeeping is needed here).
func (r *Reader) Tail(ctx context.Context, classify ClassifyFunc) (<-chan event.Event, <-chan error) {
	events := make(chan event.Event, TailEventBuffer)
	errs := make(chan error, TailErrorBuffer)

	go func() {
		defer close(events)
		defer close(errs)

		if err := r.journal.SeekTail(); err != nil {
			r.sendErr(ctx, errs, fmt.Errorf("%w: seek tail: %v", ErrJournalUnavailable, err))
			return
		}
		// Discard the pre-existing tail entry: Tail only yields NEW
		// entries from this point forward.
		if _, err := r.journal.Next(); err != nil {
			r.sendErr(ctx, errs, fmt.Errorf("%w: initial next: %v", ErrJournalUnavailable, err))
			return
		}

		attempt := 0
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			n, err := r.journal.Next()
			if err != nil {
				delay := retryDelay(attempt, r.rng)
				r.logger.Warn("journal advance failed, retrying",
					"error", err, "attempt", attempt, "delay", delay)
				r.sendErr(ctx, errs, &TransientError{Err: err})
				attempt++
				if !sleepCtx(ctx, delay) {
					return
				}
				continue
			}
			attempt = 0

			if n == 0 {
				// At the tail; wait for new entries or the poll timeout.
				r.journal.Wait(r.waitTimeout)
				continue
			}

			entry, err := r.journal.GetEntry()
			if err != nil {
				r.sendErr(ctx, errs, fmt.Errorf("get entry: %w", err))
				continue
			}

			rec := recordFromEntry(entry)
			ev := classify(rec)
			ev.Cursor = rec.Cursor
			ev.RawMessage = rec.Message()

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, errs
}

func (r *Reader) sendErr(ctx context.Context, errs chan<- error, err error) {
	select {
	case errs <- err:
	case <-ctx.Done():
	default:
		// Error buffer full; the tail loop never blocks on diagnostics.
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// RangeOlder positions at cursor (or the tail, if cursor is "") and steps
// backward up to limit matching records, returning them newest-to-oldest
// along with the cursor of the last (oldest) one returned. An empty cursor
// input means "start at the tail and walk backward", inclusive of the
// newest available entry; a non-empty cursor is itself excluded — only
// strictly older entries are returned. When fewer than limit qualifying
// entries exist, the returned cursor is "" (end-of-stream).
func (r *Reader) RangeOlder(ctx context.Context, cursor string, limit int, match MatchFunc) ([]event.Event, string, error) {
	return r.walk(ctx, cursor, limit, match, r.journal.Previous, r.journal.SeekTail)
}

// RangeNewer positions at cursor (or the head, if cursor is "") and steps
// forward up to limit matching records, returning them oldest-to-newest
// along with the cursor of the last (newest) one returned. Symmetric to
// RangeOlder; see its doc comment for the boundary rules.
func (r *Reader) RangeNewer(ctx context.Context, cursor string, limit int, match MatchFunc) ([]event.Event, string, error) {
	return r.walk(ctx, cursor, limit, match, r.journal.Next, r.journal.SeekHead)
}

func (r *Reader) walk(
	ctx context.Context,
	cursor string,
	limit int,
	match MatchFunc,
	step func() (uint64, error),
	seekDefault func() error,
) ([]event.Event, string, error) {
	if err := r.position(cursor, seekDefault); err != nil {
		return nil, "", err
	}

	const stepRetries = 3
	var rng *rand.Rand

	deadline := time.Now().Add(r.maxWalkTime)
	matched := make([]event.Event, 0, limit)

	for len(matched) < limit {
		if time.Now().After(deadline) {
			return matched, lastCursor(matched), ErrWalkTimeout
		}
		select {
		case <-ctx.Done():
			return matched, lastCursor(matched), ctx.Err()
		default:
		}

		n, err := step()
		for retry := 0; err != nil && retry < stepRetries; retry++ {
			if rng == nil {
				rng = rand.New(rand.NewSource(time.Now().UnixNano()))
			}
			if !sleepCtx(ctx, retryDelay(retry, rng)) {
				return matched, lastCursor(matched), ctx.Err()
			}
			n, err = step()
		}
		if err != nil {
			return matched, lastCursor(matched), &TransientError{Err: err}
		}
		if n == 0 {
			// Reached a journal boundary: end of stream.
			return matched, "", nil
		}

		entry, err := r.journal.GetEntry()
		if err != nil {
			return matched, lastCursor(matched), fmt.Errorf("get entry: %w", err)
		}

		rec := recordFromEntry(entry)
		if match == nil {
			matched = append(matched, event.Event{Cursor: rec.Cursor})
			continue
		}
		if ev, ok := match(rec); ok {
			ev.Cursor = rec.Cursor
			matched = append(matched, ev)
		}
	}

	return matched, lastCursor(matched), nil
}

// position moves the journal to cursor, landing ON the cursor's own entry
// so that the immediately following Previous()/Next() step yields a
// strictly older/newer entry. An empty cursor seeks to seekDefault instead.
func (r *Reader) position(cursor string, seekDefault func() error) error {
	if cursor == "" {
		return seekDefault()
	}
	if err := r.journal.SeekCursor(cursor); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownCursor, err)
	}
	n, err := r.journal.Next()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownCursor, err)
	}
	if n == 0 {
		return ErrUnknownCursor
	}
	if err := r.journal.TestCursor(cursor); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownCursor, err)
	}
	return nil
}

func lastCursor(events []event.Event) string {
	if len(events) == 0 {
		return ""
	}
	return events[len(events)-1].Cursor
}
