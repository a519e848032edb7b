package review

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("EST", -5*3600))
}

func newProjectorFixture(t *testing.T) (*Store, *Tracker, *Projector) {
	t.Helper()
	s, err := NewStore([]*Record{
		NewRecord("source_page", 1, "amount", 10),
		NewRecord("source_page", 2, "amount", 20),
		NewRecord("source_page", 2, "amount", 30),
	}, testPages(3))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	tr := NewTracker(3)
	return s, tr, NewProjector("ledger", s, tr, fixedNow)
}

func TestParseExportKind(t *testing.T) {
	for _, k := range ExportKinds() {
		got, err := ParseExportKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseExportKind(%q) = (%q, %v)", k, got, err)
		}
	}
	if _, err := ParseExportKind("everything"); !errors.Is(err, ErrUnknownExportKind) {
		t.Errorf("ParseExportKind(everything) error = %v, want ErrUnknownExportKind", err)
	}
}

func TestExportKind_Filename(t *testing.T) {
	if got := ExportChanges.Filename("county_budget"); got != "county_budget_changes.json" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestProjector_Approved(t *testing.T) {
	s, tr, p := newProjectorFixture(t)
	s.UpdateField(1, "amount", "21")
	tr.Approve(1)

	doc := p.Approved()
	md := doc.ExportMetadata
	if md.ExportType != "approved_only" || md.SourceDocument != "ledger" || md.TotalPages != 3 {
		t.Errorf("metadata = %+v", md)
	}
	if md.ExportDate != "2026-03-14T14:26:53.589Z" {
		t.Errorf("ExportDate = %q", md.ExportDate)
	}
	if len(md.ApprovedPages) != 1 || md.ApprovedPages[0] != 2 {
		t.Errorf("ApprovedPages = %v, want [2]", md.ApprovedPages)
	}
	if len(doc.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(doc.Records))
	}
	if v, _ := doc.Records[0].Get("amount"); v != 21.0 {
		t.Errorf("first approved amount = %v, want working value 21", v)
	}
}

func TestProjector_ApprovedEmptyEncodesArrays(t *testing.T) {
	_, _, p := newProjectorFixture(t)
	b, err := json.Marshal(p.Approved())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out map[string]any
	json.Unmarshal(b, &out)
	if recs, ok := out["records"].([]any); !ok || len(recs) != 0 {
		t.Errorf("records = %v, want []", out["records"])
	}
	md := out["export_metadata"].(map[string]any)
	if pages, ok := md["approved_pages"].([]any); !ok || len(pages) != 0 {
		t.Errorf("approved_pages = %v, want []", md["approved_pages"])
	}
}

func TestProjector_All(t *testing.T) {
	s, tr, p := newProjectorFixture(t)
	s.UpdateField(0, "amount", "11")
	tr.MarkEdited(0)
	tr.Approve(2)

	doc := p.All()
	if len(doc.Records) != s.Len() {
		t.Fatalf("len(Records) = %d, want %d", len(doc.Records), s.Len())
	}
	wantStatus := []string{"edited", "pending", "pending"}
	for i, rec := range doc.Records {
		if v, _ := rec.Get(ReviewStatusField); v != wantStatus[i] {
			t.Errorf("record %d _review_status = %v, want %s", i, v, wantStatus[i])
		}
	}
	if doc.ExportMetadata.PageStatus[3] != StatusApproved {
		t.Errorf("page_status[3] = %q, want approved", doc.ExportMetadata.PageStatus[3])
	}

	// The annotation must not leak into the working dataset.
	rec, _ := s.Record(0)
	if rec.Has(ReviewStatusField) {
		t.Error("working record carries _review_status after export")
	}
	if s.IsRecordModified(1) {
		t.Error("export modified record 1")
	}

	b, _ := json.Marshal(doc.ExportMetadata)
	var md map[string]any
	json.Unmarshal(b, &md)
	ps := md["page_status"].(map[string]any)
	if ps["1"] != "edited" || ps["3"] != "approved" {
		t.Errorf("page_status JSON = %v", ps)
	}
	if md["export_type"] != "all_records" {
		t.Errorf("export_type = %v", md["export_type"])
	}
}

func TestProjector_Changes(t *testing.T) {
	s, _, p := newProjectorFixture(t)
	s.UpdateField(2, "amount", "")

	doc := p.Changes()
	if doc.ExportMetadata.TotalChanges != 1 || len(doc.Changes) != 1 {
		t.Fatalf("changes = %+v", doc)
	}
	c := doc.Changes[0]
	if c.RecordIndex != 2 || c.SourcePage != 2 || c.Field != "amount" || c.NewValue != nil || c.OriginalValue != 30.0 {
		t.Errorf("change = %+v", c)
	}

	b, _ := json.Marshal(c)
	want := `{"record_index":2,"source_page":2,"field":"amount","original_value":30,"new_value":null}`
	if string(b) != want {
		t.Errorf("change JSON = %s, want %s", b, want)
	}
}

func TestProjector_Project(t *testing.T) {
	_, _, p := newProjectorFixture(t)
	for _, k := range ExportKinds() {
		doc, err := p.Project(k)
		if err != nil {
			t.Fatalf("Project(%q) error = %v", k, err)
		}
		if doc.Kind() != k {
			t.Errorf("Project(%q).Kind() = %q", k, doc.Kind())
		}
	}
	if _, err := p.Project("bogus"); !errors.Is(err, ErrUnknownExportKind) {
		t.Errorf("Project(bogus) error = %v", err)
	}
}
