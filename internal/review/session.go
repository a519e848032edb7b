package review

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session composes the store, status tracker, diff engine, navigator and
// projector behind the reviewer-facing operations. All mutation of the
// working dataset goes through a Session so status and diff stay in step.
type Session struct {
	id        string
	document  string
	pages     []Page
	store     *Store
	tracker   *Tracker
	diff      *Diff
	nav       *Navigator
	projector *Projector
}

type sessionOptions struct {
	id  string
	now func() time.Time
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithClock sets the clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) { o.now = now }
}

// WithID sets the session identifier instead of generating one.
func WithID(id string) Option {
	return func(o *sessionOptions) { o.id = id }
}

// NewSession loads records against pages. Page indices are reassigned to
// match their position.
func NewSession(document string, pages []Page, records []*Record, opts ...Option) (*Session, error) {
	o := sessionOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.New().String()
	}

	ps := make([]Page, len(pages))
	for i, p := range pages {
		p.Index = i
		ps[i] = p
	}

	store, err := NewStore(records, ps)
	if err != nil {
		return nil, err
	}
	tracker := NewTracker(len(ps))

	return &Session{
		id:        o.id,
		document:  document,
		pages:     ps,
		store:     store,
		tracker:   tracker,
		diff:      NewDiff(store),
		nav:       NewNavigator(len(ps)),
		projector: NewProjector(document, store, tracker, o.now),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// DocumentName returns the source document name.
func (s *Session) DocumentName() string { return s.document }

// PageCount returns the number of pages.
func (s *Session) PageCount() int { return len(s.pages) }

// RecordCount returns the number of records.
func (s *Session) RecordCount() int { return s.store.Len() }

// Pages returns all pages in order.
func (s *Session) Pages() []Page {
	out := make([]Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Page returns a single page.
func (s *Session) Page(index int) (Page, error) {
	if err := s.checkPage(index); err != nil {
		return Page{}, err
	}
	return s.pages[index], nil
}

// Current returns the current page index.
func (s *Session) Current() int { return s.nav.Current() }

// SelectPage makes index the current page.
func (s *Session) SelectPage(index int) error {
	return s.nav.GoTo(index)
}

// NextPage advances one page, clamped at the last page.
func (s *Session) NextPage() bool { return s.nav.Next() }

// PrevPage goes back one page, clamped at the first page.
func (s *Session) PrevPage() bool { return s.nav.Prev() }

// UpdateField edits a working field and marks the record's page edited
// unless it is already approved. It reports whether the field now differs
// from the original.
func (s *Session) UpdateField(recordIndex int, field, raw string) (bool, error) {
	changed, err := s.store.UpdateField(recordIndex, field, raw)
	if err != nil {
		return false, err
	}
	page, _ := s.store.PageOf(recordIndex)
	s.tracker.MarkEdited(page)
	return changed, nil
}

// ApproveAndNext approves the current page and advances unless it is the
// last one. It reports whether the current page changed.
func (s *Session) ApproveAndNext() bool {
	return s.nav.ApproveAndAdvance(s.tracker)
}

// RevertCurrentPage resets the current page's records to the original.
func (s *Session) RevertCurrentPage() {
	s.revert(s.nav.Current())
}

// RevertPage resets a page's records to the original.
func (s *Session) RevertPage(index int) error {
	if err := s.checkPage(index); err != nil {
		return err
	}
	s.revert(index)
	return nil
}

func (s *Session) revert(index int) {
	s.store.RevertPage(index)
	s.tracker.Reverted(index)
}

// Status returns the review status of a page.
func (s *Session) Status(index int) (Status, error) {
	st, ok := s.tracker.Status(index)
	if !ok {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrPageIndexOutOfRange, index, len(s.pages))
	}
	return st, nil
}

// Statuses returns every page status indexed by page.
func (s *Session) Statuses() []Status { return s.tracker.Statuses() }

// Progress returns approved and total page counts.
func (s *Session) Progress() (approved, total int) { return s.tracker.Progress() }

// PendingCount returns how many pages are still pending.
func (s *Session) PendingCount() int { return s.tracker.Count(StatusPending) }

// Record returns a copy of a working record.
func (s *Session) Record(recordIndex int) (*Record, error) { return s.store.Record(recordIndex) }

// Original returns a copy of an original record.
func (s *Session) Original(recordIndex int) (*Record, error) { return s.store.Original(recordIndex) }

// RecordsForPage returns copies of the working records on a page.
func (s *Session) RecordsForPage(index int) []IndexedRecord { return s.store.RecordsForPage(index) }

// IsRecordModified reports whether a record differs from the original.
func (s *Session) IsRecordModified(recordIndex int) bool {
	return s.store.IsRecordModified(recordIndex)
}

// FieldIsEdited reports whether a field differs from the original.
func (s *Session) FieldIsEdited(recordIndex int, field string) bool {
	return s.diff.FieldIsEdited(recordIndex, field)
}

// RecordEditCount returns the number of modified records on a page.
func (s *Session) RecordEditCount(index int) int { return s.diff.RecordEditCount(index) }

// AllChanges yields every edited field.
func (s *Session) AllChanges() iter.Seq[Change] { return s.diff.AllChanges() }

// Export builds the requested projection of the current state.
func (s *Session) Export(kind ExportKind) (Document, error) {
	return s.projector.Project(kind)
}

func (s *Session) checkPage(index int) error {
	if index < 0 || index >= len(s.pages) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrPageIndexOutOfRange, index, len(s.pages))
	}
	return nil
}

// SyncSession serializes access to a Session.
type SyncSession struct {
	mu sync.Mutex
	s  *Session
}

// NewSyncSession wraps s.
func NewSyncSession(s *Session) *SyncSession {
	return &SyncSession{s: s}
}

// Do runs fn with exclusive access to the session.
func (ss *SyncSession) Do(fn func(*Session) error) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return fn(ss.s)
}
