package review

import (
	"fmt"
	"sort"
	"time"
)

// ExportKind selects one of the export projections.
type ExportKind string

const (
	ExportApproved ExportKind = "approved"
	ExportAll      ExportKind = "all"
	ExportChanges  ExportKind = "changes"
)

// Export type tags written to export_metadata.export_type.
const (
	ExportTypeApprovedOnly = "approved_only"
	ExportTypeAllRecords   = "all_records"
	ExportTypeChangesOnly  = "changes_only"
)

// ExportDateLayout formats export_date as an ISO-8601 UTC timestamp with
// millisecond precision.
const ExportDateLayout = "2006-01-02T15:04:05.000Z"

// ExportKinds lists the supported kinds.
func ExportKinds() []ExportKind {
	return []ExportKind{ExportApproved, ExportAll, ExportChanges}
}

// ParseExportKind validates an export kind name.
func ParseExportKind(s string) (ExportKind, error) {
	switch k := ExportKind(s); k {
	case ExportApproved, ExportAll, ExportChanges:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExportKind, s)
}

// Filename returns "{documentName}_{kind}.json".
func (k ExportKind) Filename(documentName string) string {
	return fmt.Sprintf("%s_%s.json", documentName, k)
}

// Document is an export projection ready for serialization.
type Document interface {
	Kind() ExportKind
}

// ApprovedMetadata describes an approved-only export.
type ApprovedMetadata struct {
	SourceDocument string `json:"source_document"`
	ExportDate     string `json:"export_date"`
	ExportType     string `json:"export_type"`
	ApprovedPages  []int  `json:"approved_pages"`
	TotalPages     int    `json:"total_pages"`
}

// ApprovedExport holds the working records of approved pages.
type ApprovedExport struct {
	ExportMetadata ApprovedMetadata `json:"export_metadata"`
	Records        []*Record        `json:"records"`
}

func (*ApprovedExport) Kind() ExportKind { return ExportApproved }

// AllMetadata describes an all-records export. PageStatus is keyed by
// 1-based page number.
type AllMetadata struct {
	SourceDocument string         `json:"source_document"`
	ExportDate     string         `json:"export_date"`
	ExportType     string         `json:"export_type"`
	PageStatus     map[int]Status `json:"page_status"`
}

// AllExport holds every working record annotated with its page status.
type AllExport struct {
	ExportMetadata AllMetadata `json:"export_metadata"`
	Records        []*Record   `json:"records"`
}

func (*AllExport) Kind() ExportKind { return ExportAll }

// ChangesMetadata describes a changes-log export.
type ChangesMetadata struct {
	SourceDocument string `json:"source_document"`
	ExportDate     string `json:"export_date"`
	ExportType     string `json:"export_type"`
	TotalChanges   int    `json:"total_changes"`
}

// ChangesExport lists every edited field with its before and after value.
type ChangesExport struct {
	ExportMetadata ChangesMetadata `json:"export_metadata"`
	Changes        []Change        `json:"changes"`
}

func (*ChangesExport) Kind() ExportKind { return ExportChanges }

// Projector builds export documents from the current state. It never
// mutates the store or the tracker.
type Projector struct {
	store    *Store
	tracker  *Tracker
	diff     *Diff
	document string
	now      func() time.Time
}

// NewProjector returns a projector for the named source document. A nil now
// uses time.Now.
func NewProjector(document string, store *Store, tracker *Tracker, now func() time.Time) *Projector {
	if now == nil {
		now = time.Now
	}
	return &Projector{
		store:    store,
		tracker:  tracker,
		diff:     NewDiff(store),
		document: document,
		now:      now,
	}
}

// Project builds the document for kind.
func (p *Projector) Project(kind ExportKind) (Document, error) {
	switch kind {
	case ExportApproved:
		return p.Approved(), nil
	case ExportAll:
		return p.All(), nil
	case ExportChanges:
		return p.Changes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExportKind, kind)
}

// Approved keeps the working records whose page is approved.
func (p *Projector) Approved() *ApprovedExport {
	statuses := p.tracker.Statuses()
	approvedPages := make([]int, 0)
	for i, st := range statuses {
		if st == StatusApproved {
			approvedPages = append(approvedPages, i+1)
		}
	}

	records := make([]*Record, 0)
	for i, rec := range p.store.working {
		if statuses[p.store.pageOf[i]] == StatusApproved {
			records = append(records, rec.Clone())
		}
	}

	return &ApprovedExport{
		ExportMetadata: ApprovedMetadata{
			SourceDocument: p.document,
			ExportDate:     p.exportDate(),
			ExportType:     ExportTypeApprovedOnly,
			ApprovedPages:  approvedPages,
			TotalPages:     len(statuses),
		},
		Records: records,
	}
}

// All returns every working record with a _review_status field copied from
// its page status. The annotation is applied to copies only.
func (p *Projector) All() *AllExport {
	statuses := p.tracker.Statuses()
	pageStatus := make(map[int]Status, len(statuses))
	for i, st := range statuses {
		pageStatus[i+1] = st
	}

	records := make([]*Record, len(p.store.working))
	for i, rec := range p.store.working {
		annotated := rec.Clone()
		annotated.Set(ReviewStatusField, string(statuses[p.store.pageOf[i]]))
		records[i] = annotated
	}

	return &AllExport{
		ExportMetadata: AllMetadata{
			SourceDocument: p.document,
			ExportDate:     p.exportDate(),
			ExportType:     ExportTypeAllRecords,
			PageStatus:     pageStatus,
		},
		Records: records,
	}
}

// Changes returns the full changes log.
func (p *Projector) Changes() *ChangesExport {
	changes := p.diff.Changes()
	return &ChangesExport{
		ExportMetadata: ChangesMetadata{
			SourceDocument: p.document,
			ExportDate:     p.exportDate(),
			ExportType:     ExportTypeChangesOnly,
			TotalChanges:   len(changes),
		},
		Changes: changes,
	}
}

func (p *Projector) exportDate() string {
	return p.now().UTC().Format(ExportDateLayout)
}

// SortedPageNumbers returns the keys of a page status map in ascending order.
func SortedPageNumbers(m map[int]Status) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
