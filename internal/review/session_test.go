package review

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
)

func twoPageSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("doc", []Page{
		{DisplayName: "Page 1", ImageRef: "page_001.png"},
		{DisplayName: "Page 2", ImageRef: "page_002.png"},
	}, []*Record{
		NewRecord("source_page", 1, "amount", 10),
		NewRecord("source_page", 2, "amount", 20),
	}, WithClock(fixedNow), WithID("test-session"))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func TestSession_AllPagesPendingAfterLoad(t *testing.T) {
	s := twoPageSession(t)
	for i, st := range s.Statuses() {
		if st != StatusPending {
			t.Errorf("page %d status = %q, want pending", i, st)
		}
	}
	if s.ID() != "test-session" {
		t.Errorf("ID() = %q", s.ID())
	}
	if p, _ := s.Page(1); p.Index != 1 {
		t.Errorf("Page(1).Index = %d, want 1", p.Index)
	}
}

func TestSession_GeneratesID(t *testing.T) {
	a, _ := NewSession("doc", nil, nil)
	b, _ := NewSession("doc", nil, nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs = %q, %q, want distinct non-empty", a.ID(), b.ID())
	}
}

func TestSession_EditApproveExportScenario(t *testing.T) {
	s := twoPageSession(t)

	changed, err := s.UpdateField(0, "amount", "15")
	if err != nil || !changed {
		t.Fatalf("UpdateField() = (%v, %v)", changed, err)
	}
	if st, _ := s.Status(0); st != StatusEdited {
		t.Errorf("status(page1) = %q, want edited", st)
	}

	s.ApproveAndNext()
	if st, _ := s.Status(0); st != StatusApproved {
		t.Errorf("status(page1) = %q, want approved", st)
	}
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1", s.Current())
	}

	doc, err := s.Export(ExportApproved)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	b, _ := json.Marshal(doc.(*ApprovedExport).Records)
	if string(b) != `[{"source_page":1,"amount":15}]` {
		t.Errorf("approved records = %s", b)
	}
}

func TestSession_NumericEmptyIsNull(t *testing.T) {
	s := twoPageSession(t)
	if _, err := s.UpdateField(1, "amount", ""); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	rec, _ := s.Record(1)
	v, ok := rec.Get("amount")
	if !ok || v != nil {
		t.Errorf("amount = %#v, want nil", v)
	}
}

func TestSession_InvalidNumberLeavesStatus(t *testing.T) {
	s := twoPageSession(t)
	if _, err := s.UpdateField(0, "amount", "ten"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("UpdateField() error = %v, want ErrInvalidValue", err)
	}
	if st, _ := s.Status(0); st != StatusPending {
		t.Errorf("status = %q, failed edit must not mark page edited", st)
	}
}

func TestSession_EditMarksRecordPage(t *testing.T) {
	s := twoPageSession(t)
	// Current page is 0; the edited record lives on page 1.
	s.UpdateField(1, "amount", "25")
	if st, _ := s.Status(1); st != StatusEdited {
		t.Errorf("status(page2) = %q, want edited", st)
	}
	if st, _ := s.Status(0); st != StatusPending {
		t.Errorf("status(page1) = %q, want pending", st)
	}
}

func TestSession_StickyApproval(t *testing.T) {
	s := twoPageSession(t)
	s.ApproveAndNext()
	s.PrevPage()

	s.UpdateField(0, "amount", "99")
	if st, _ := s.Status(0); st != StatusApproved {
		t.Errorf("status after edit = %q, want approved", st)
	}

	s.RevertCurrentPage()
	if st, _ := s.Status(0); st != StatusApproved {
		t.Errorf("status after revert = %q, want approved", st)
	}
	if s.IsRecordModified(0) {
		t.Error("revert did not reset field values")
	}
}

func TestSession_RevertEditedPage(t *testing.T) {
	s := twoPageSession(t)
	s.UpdateField(0, "amount", "11")
	s.RevertCurrentPage()
	if st, _ := s.Status(0); st != StatusPending {
		t.Errorf("status = %q, want pending", st)
	}
	if err := s.RevertPage(4); !errors.Is(err, ErrPageIndexOutOfRange) {
		t.Errorf("RevertPage(4) error = %v", err)
	}
}

func TestSession_NextOnLastPage(t *testing.T) {
	s := twoPageSession(t)
	if err := s.SelectPage(1); err != nil {
		t.Fatalf("SelectPage(1) error = %v", err)
	}
	beforeA, beforeT := s.Progress()
	if s.NextPage() {
		t.Error("NextPage() on last page moved")
	}
	afterA, afterT := s.Progress()
	if s.Current() != 1 || beforeA != afterA || beforeT != afterT {
		t.Errorf("state changed: current=%d progress=(%d,%d)", s.Current(), afterA, afterT)
	}
	if err := s.SelectPage(2); !errors.Is(err, ErrPageIndexOutOfRange) {
		t.Errorf("SelectPage(2) error = %v", err)
	}
}

func TestSession_InvalidDataset(t *testing.T) {
	_, err := NewSession("doc", []Page{{DisplayName: "Page 1"}}, []*Record{NewRecord("source_page", 2)})
	if !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("NewSession() error = %v, want ErrInvalidDataset", err)
	}
}

// TestSession_RandomWalkInvariants drives random intents and checks the
// export invariants after every step.
func TestSession_RandomWalkInvariants(t *testing.T) {
	pages := []Page{{}, {}, {}, {}}
	var records []*Record
	for i := 0; i < 12; i++ {
		records = append(records, NewRecord("source_page", i%4+1, "amount", i, "label", "r"))
	}
	s, err := NewSession("walk", pages, records, WithClock(fixedNow))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	inputs := []string{"", "1", "2.5", "abc", "x"}
	for step := 0; step < 500; step++ {
		switch rng.Intn(6) {
		case 0:
			s.UpdateField(rng.Intn(len(records)), "amount", inputs[rng.Intn(len(inputs))])
		case 1:
			s.UpdateField(rng.Intn(len(records)), "label", inputs[rng.Intn(len(inputs))])
		case 2:
			s.ApproveAndNext()
		case 3:
			s.PrevPage()
		case 4:
			s.RevertCurrentPage()
		case 5:
			s.SelectPage(rng.Intn(len(pages)))
		}

		statuses := s.Statuses()
		doc, _ := s.Export(ExportApproved)
		for _, rec := range doc.(*ApprovedExport).Records {
			p, _ := rec.SourcePage()
			if statuses[p-1] != StatusApproved {
				t.Fatalf("step %d: approved export holds record from %s page %d", step, statuses[p-1], p)
			}
		}

		all, _ := s.Export(ExportAll)
		if n := len(all.(*AllExport).Records); n != s.RecordCount() {
			t.Fatalf("step %d: all export has %d records, want %d", step, n, s.RecordCount())
		}

		changes := 0
		for range s.AllChanges() {
			changes++
		}
		modified := false
		for i := 0; i < s.RecordCount(); i++ {
			if s.IsRecordModified(i) {
				modified = true
			}
		}
		if (changes == 0) == modified {
			t.Fatalf("step %d: %d changes but modified=%v", step, changes, modified)
		}
	}
}

func TestSyncSession_Do(t *testing.T) {
	ss := NewSyncSession(twoPageSession(t))
	wantErr := errors.New("boom")
	err := ss.Do(func(s *Session) error {
		s.NextPage()
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Do() error = %v", err)
	}
	ss.Do(func(s *Session) error {
		if s.Current() != 1 {
			t.Errorf("Current() = %d, want 1", s.Current())
		}
		return nil
	})
}
