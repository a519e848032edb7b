package review

import "testing"

func TestDiff_FieldIsEditedAndCounts(t *testing.T) {
	s, _ := NewStore([]*Record{
		NewRecord("source_page", 1, "amount", 1),
		NewRecord("source_page", 1, "amount", 2),
		NewRecord("source_page", 2, "amount", 3),
	}, testPages(2))
	d := NewDiff(s)

	if d.RecordEditCount(0) != 0 {
		t.Errorf("RecordEditCount(0) = %d, want 0", d.RecordEditCount(0))
	}

	s.UpdateField(1, "amount", "20")
	if !d.FieldIsEdited(1, "amount") {
		t.Error("FieldIsEdited(1, amount) = false")
	}
	if d.FieldIsEdited(0, "amount") {
		t.Error("FieldIsEdited(0, amount) = true")
	}
	if d.FieldIsEdited(5, "amount") {
		t.Error("FieldIsEdited on missing record = true")
	}
	if got := d.RecordEditCount(0); got != 1 {
		t.Errorf("RecordEditCount(0) = %d, want 1", got)
	}

	// Setting a value back to the original clears the edit.
	s.UpdateField(1, "amount", "2")
	if got := d.RecordEditCount(0); got != 0 {
		t.Errorf("RecordEditCount(0) after restoring value = %d, want 0", got)
	}
	if got := d.RecordEditCount(-1); got != 0 {
		t.Errorf("RecordEditCount(-1) = %d, want 0", got)
	}
}

func TestDiff_AllChangesOrder(t *testing.T) {
	s, _ := NewStore([]*Record{
		NewRecord("source_page", 2, "b", "x", "a", "y"),
		NewRecord("source_page", 1, "amount", 1),
	}, testPages(2))
	d := NewDiff(s)

	s.UpdateField(1, "amount", "5")
	s.UpdateField(0, "a", "Y")
	s.UpdateField(0, "b", "X")
	s.UpdateField(0, "added", "new")

	got := d.Changes()
	want := []Change{
		{RecordIndex: 0, SourcePage: 2, Field: "b", OriginalValue: "x", NewValue: "X"},
		{RecordIndex: 0, SourcePage: 2, Field: "a", OriginalValue: "y", NewValue: "Y"},
		{RecordIndex: 0, SourcePage: 2, Field: "added", OriginalValue: nil, NewValue: "new"},
		{RecordIndex: 1, SourcePage: 1, Field: "amount", OriginalValue: 1.0, NewValue: 5.0},
	}
	if len(got) != len(want) {
		t.Fatalf("Changes() = %+v, want %+v", got, want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.RecordIndex != w.RecordIndex || g.SourcePage != w.SourcePage || g.Field != w.Field ||
			!valuesEqual(g.OriginalValue, w.OriginalValue) || !valuesEqual(g.NewValue, w.NewValue) {
			t.Errorf("Changes()[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestDiff_AllChangesEmptyIffEqual(t *testing.T) {
	s, _ := NewStore([]*Record{NewRecord("source_page", 1, "amount", 1)}, testPages(1))
	d := NewDiff(s)

	if n := len(d.Changes()); n != 0 {
		t.Fatalf("Changes() on fresh store = %d, want 0", n)
	}
	s.UpdateField(0, "amount", "2")
	if n := len(d.Changes()); n != 1 {
		t.Fatalf("Changes() after edit = %d, want 1", n)
	}
	s.RevertPage(0)
	if n := len(d.Changes()); n != 0 {
		t.Fatalf("Changes() after revert = %d, want 0", n)
	}
}

func TestDiff_AllChangesStopsEarly(t *testing.T) {
	s, _ := NewStore([]*Record{NewRecord("source_page", 1, "a", "1", "b", "2")}, testPages(1))
	s.UpdateField(0, "a", "x")
	s.UpdateField(0, "b", "y")

	n := 0
	for range NewDiff(s).AllChanges() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d changes, want 1", n)
	}
}

func TestDiff_AddedNullFieldIsChange(t *testing.T) {
	s, _ := NewStore([]*Record{NewRecord("source_page", 1, "amount", 10)}, testPages(1))
	d := NewDiff(s)

	changed, err := s.UpdateField(0, "amount_typo", "")
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if !changed {
		t.Error("UpdateField() on a field the original lacks reported no change")
	}
	if !d.FieldIsEdited(0, "amount_typo") {
		t.Error("FieldIsEdited(0, amount_typo) = false")
	}
	if !s.IsRecordModified(0) {
		t.Fatal("IsRecordModified(0) = false")
	}
	got := d.Changes()
	if len(got) != 1 {
		t.Fatalf("Changes() = %+v, want one change", got)
	}
	if got[0].Field != "amount_typo" || got[0].OriginalValue != nil || got[0].NewValue != nil {
		t.Errorf("Changes()[0] = %+v", got[0])
	}

	s.RevertPage(0)
	if n := len(d.Changes()); n != 0 || s.IsRecordModified(0) {
		t.Errorf("after revert: Changes() = %d, modified = %v", n, s.IsRecordModified(0))
	}
}
