package review

import (
	"encoding/json"
	"testing"
)

func TestRecord_JSONPreservesOrder(t *testing.T) {
	in := `{"source_page":2,"vendor":"Acme","amount":12.5,"amount_note":"redacted total","items":[{"b":1,"a":2}],"_internal":true}`

	var rec Record
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := []string{"source_page", "vendor", "amount", "amount_note", "items", "_internal"}
	got := rec.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	out, err := json.Marshal(&rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var roundTrip Record
	if err := json.Unmarshal(out, &roundTrip); err != nil {
		t.Fatalf("Unmarshal(round trip) error = %v", err)
	}
	if !rec.Equal(&roundTrip) {
		t.Errorf("round trip changed record: %s", out)
	}
}

func TestRecord_UnmarshalRejectsNonObject(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`[1,2]`), &rec); err == nil {
		t.Error("expected error for array input")
	}
}

func TestRecord_SourcePage(t *testing.T) {
	tests := []struct {
		name   string
		rec    *Record
		want   int
		wantOK bool
	}{
		{"integer", NewRecord("source_page", 3), 3, true},
		{"float integral", NewRecord("source_page", 3.0), 3, true},
		{"fractional", NewRecord("source_page", 2.5), 0, false},
		{"zero", NewRecord("source_page", 0), 0, false},
		{"string", NewRecord("source_page", "3"), 0, false},
		{"missing", NewRecord("amount", 1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rec.SourcePage()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SourcePage() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRecord_Sidecars(t *testing.T) {
	rec := NewRecord(
		"source_page", 1,
		"amount", 10,
		"amount_note", "partially redacted",
		"amount_status", "redacted",
		"amount_confidence", "low",
		"date_note", "",
	)

	if note, ok := rec.Note("amount"); !ok || note != "partially redacted" {
		t.Errorf("Note(amount) = (%q, %v)", note, ok)
	}
	if st, ok := rec.Status("amount"); !ok || st != "redacted" {
		t.Errorf("Status(amount) = (%q, %v)", st, ok)
	}
	if c, ok := rec.Confidence("amount"); !ok || c != "low" {
		t.Errorf("Confidence(amount) = (%q, %v)", c, ok)
	}
	if _, ok := rec.Note("date"); ok {
		t.Error("empty note should not be reported")
	}
	if _, ok := rec.Note("vendor"); ok {
		t.Error("missing note should not be reported")
	}

	for _, name := range []string{"amount_note", "amount_status", "amount_confidence"} {
		if !IsSidecar(name) {
			t.Errorf("IsSidecar(%q) = false, want true", name)
		}
	}
	if IsSidecar("amount") {
		t.Error("IsSidecar(amount) = true, want false")
	}
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	rec := NewRecord("source_page", 1, "items", []any{map[string]any{"qty": 1}})
	clone := rec.Clone()

	items, _ := clone.Get("items")
	items.([]any)[0].(map[string]any)["qty"] = 99.0

	orig, _ := rec.Get("items")
	if got := orig.([]any)[0].(map[string]any)["qty"]; got != 1.0 {
		t.Errorf("original mutated through clone: qty = %v", got)
	}
}

func TestRecord_Equal(t *testing.T) {
	a := NewRecord("source_page", 1, "meta", map[string]any{"x": 1, "y": "z"})
	b := NewRecord("meta", map[string]any{"y": "z", "x": 1.0}, "source_page", 1.0)
	if !a.Equal(b) {
		t.Error("records with same fields in different order should be equal")
	}

	c := NewRecord("source_page", 1, "meta", map[string]any{"x": 2, "y": "z"})
	if a.Equal(c) {
		t.Error("records with different nested value should differ")
	}

	d := NewRecord("source_page", 1, "meta", map[string]any{"x": 1, "y": "z"}, "meta_note", "n")
	if a.Equal(d) {
		t.Error("sidecar fields take part in equality")
	}
}

func TestNewRecord_PanicsOnOddArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewRecord("source_page")
}
