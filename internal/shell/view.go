// Package shell turns a review session into view models for a user
// interface and maps user input back onto session operations.
package shell

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/docreview/internal/dataset"
	"github.com/jackzampolin/docreview/internal/review"
)

// DefaultInternalPrefix marks fields that are never rendered.
const DefaultInternalPrefix = "_"

// Options configures a Presenter.
type Options struct {
	// InternalPrefix hides fields whose name starts with it.
	InternalPrefix string
	// Schema supplies optional per-field hints.
	Schema dataset.Schema
}

// Presenter builds view models from a session. It only reads the session.
type Presenter struct {
	prefix string
	schema dataset.Schema
}

// NewPresenter returns a presenter. An empty InternalPrefix uses "_".
func NewPresenter(opts Options) *Presenter {
	if opts.InternalPrefix == "" {
		opts.InternalPrefix = DefaultInternalPrefix
	}
	return &Presenter{prefix: opts.InternalPrefix, schema: opts.Schema}
}

// Summary is the session header: document, position and progress.
type Summary struct {
	SessionID   string `json:"session_id"`
	Document    string `json:"document"`
	PageCount   int    `json:"page_count"`
	RecordCount int    `json:"record_count"`
	CurrentPage int    `json:"current_page"`
	Approved    int    `json:"approved"`
	Total       int    `json:"total"`
	Pending     int    `json:"pending"`
	Changes     int    `json:"changes"`
}

// PageItem is one entry of the page list.
type PageItem struct {
	Number      int           `json:"page_num"`
	DisplayName string        `json:"display_name"`
	Status      review.Status `json:"status"`
	Current     bool          `json:"current"`
}

// FieldView is one editable field of a record.
type FieldView struct {
	Name    string         `json:"name"`
	Label   string         `json:"label"`
	Value   any            `json:"value"`
	Display string         `json:"display"`
	Input   InputKind      `json:"input"`
	Edited  bool           `json:"edited"`
	Notes   []Annotation   `json:"notes,omitempty"`
	Hint    *dataset.Field `json:"hint,omitempty"`
}

// RecordView is one record card.
type RecordView struct {
	Index    int         `json:"record_index"`
	Title    string      `json:"title"`
	Modified bool        `json:"modified"`
	Fields   []FieldView `json:"fields"`
}

// PageView is the data panel for one page.
type PageView struct {
	Number        int           `json:"page_num"`
	DisplayName   string        `json:"display_name"`
	Status        review.Status `json:"status"`
	Current       bool          `json:"current"`
	EditCount     int           `json:"edit_count"`
	EditIndicator string        `json:"edit_indicator,omitempty"`
	Records       []RecordView  `json:"records"`
}

// FinishView tells the reviewer how many pages remain before exporting.
type FinishView struct {
	Pending      int    `json:"pending"`
	Approved     int    `json:"approved"`
	Total        int    `json:"total"`
	NeedsConfirm bool   `json:"needs_confirm"`
	Message      string `json:"message,omitempty"`
}

// Summary builds the session header.
func (p *Presenter) Summary(s *review.Session) Summary {
	approved, total := s.Progress()
	changes := 0
	for range s.AllChanges() {
		changes++
	}
	return Summary{
		SessionID:   s.ID(),
		Document:    s.DocumentName(),
		PageCount:   s.PageCount(),
		RecordCount: s.RecordCount(),
		CurrentPage: s.Current() + 1,
		Approved:    approved,
		Total:       total,
		Pending:     s.PendingCount(),
		Changes:     changes,
	}
}

// PageList builds the page list with statuses.
func (p *Presenter) PageList(s *review.Session) []PageItem {
	statuses := s.Statuses()
	items := make([]PageItem, 0, len(statuses))
	for i, pg := range s.Pages() {
		items = append(items, PageItem{
			Number:      i + 1,
			DisplayName: pg.DisplayName,
			Status:      statuses[i],
			Current:     i == s.Current(),
		})
	}
	return items
}

// Page builds the data panel for a page index.
func (p *Presenter) Page(s *review.Session, index int) (PageView, error) {
	pg, err := s.Page(index)
	if err != nil {
		return PageView{}, err
	}
	status, err := s.Status(index)
	if err != nil {
		return PageView{}, err
	}

	records := s.RecordsForPage(index)
	views := make([]RecordView, 0, len(records))
	for _, ir := range records {
		views = append(views, p.record(s, ir))
	}

	editCount := s.RecordEditCount(index)
	return PageView{
		Number:        index + 1,
		DisplayName:   pg.DisplayName,
		Status:        status,
		Current:       index == s.Current(),
		EditCount:     editCount,
		EditIndicator: EditIndicator(editCount),
		Records:       views,
	}, nil
}

// CurrentPage builds the data panel for the current page.
func (p *Presenter) CurrentPage(s *review.Session) (PageView, error) {
	return p.Page(s, s.Current())
}

// Finish reports pending pages so the UI can confirm before exporting.
func (p *Presenter) Finish(s *review.Session) FinishView {
	approved, total := s.Progress()
	pending := s.PendingCount()
	v := FinishView{
		Pending:      pending,
		Approved:     approved,
		Total:        total,
		NeedsConfirm: pending > 0,
	}
	if pending > 0 {
		v.Message = fmt.Sprintf("You have %d page(s) still pending review. Export anyway?", pending)
	}
	return v
}

// Record builds the view of one record by dataset index.
func (p *Presenter) Record(s *review.Session, recordIndex int) (RecordView, error) {
	rec, err := s.Record(recordIndex)
	if err != nil {
		return RecordView{}, err
	}
	return p.record(s, review.IndexedRecord{Index: recordIndex, Record: rec}), nil
}

// Schema returns the field hints, which may be empty.
func (p *Presenter) Schema() dataset.Schema {
	return p.schema
}

// Visible reports whether a field is rendered.
func (p *Presenter) Visible(field string) bool {
	return !strings.HasPrefix(field, p.prefix)
}

func (p *Presenter) record(s *review.Session, ir review.IndexedRecord) RecordView {
	rec := ir.Record
	fields := make([]FieldView, 0, rec.Len())
	for _, name := range rec.Keys() {
		if !p.Visible(name) {
			continue
		}
		v, _ := rec.Get(name)
		note, _ := rec.Note(name)
		status, _ := rec.Status(name)
		confidence, _ := rec.Confidence(name)

		fv := FieldView{
			Name:    name,
			Label:   FormatFieldName(name),
			Value:   v,
			Display: DisplayValue(v),
			Input:   InputKindFor(v),
			Edited:  s.FieldIsEdited(ir.Index, name),
			Notes:   annotations(note, status, confidence),
		}
		if hint, ok := p.schema.Lookup(name); ok {
			fv.Hint = &hint
		}
		fields = append(fields, fv)
	}
	return RecordView{
		Index:    ir.Index,
		Title:    fmt.Sprintf("Record #%d", ir.Index+1),
		Modified: s.IsRecordModified(ir.Index),
		Fields:   fields,
	}
}
