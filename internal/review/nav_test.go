package review

import (
	"errors"
	"testing"
)

func TestNavigator_Clamps(t *testing.T) {
	n := NewNavigator(3)

	if n.Prev() {
		t.Error("Prev() at first page moved")
	}
	if n.Current() != 0 {
		t.Errorf("Current() = %d, want 0", n.Current())
	}

	n.Next()
	n.Next()
	if n.Next() {
		t.Error("Next() at last page moved")
	}
	if n.Current() != 2 {
		t.Errorf("Current() = %d, want 2", n.Current())
	}
}

func TestNavigator_GoTo(t *testing.T) {
	n := NewNavigator(3)
	if err := n.GoTo(2); err != nil {
		t.Fatalf("GoTo(2) error = %v", err)
	}
	if n.Current() != 2 {
		t.Errorf("Current() = %d, want 2", n.Current())
	}

	for _, idx := range []int{-1, 3, 100} {
		if err := n.GoTo(idx); !errors.Is(err, ErrPageIndexOutOfRange) {
			t.Errorf("GoTo(%d) error = %v, want ErrPageIndexOutOfRange", idx, err)
		}
	}
	if n.Current() != 2 {
		t.Errorf("failed GoTo changed current to %d", n.Current())
	}
}

func TestNavigator_ZeroPages(t *testing.T) {
	n := NewNavigator(0)
	if n.Next() || n.Prev() {
		t.Error("navigation moved with zero pages")
	}
	if err := n.GoTo(0); !errors.Is(err, ErrPageIndexOutOfRange) {
		t.Errorf("GoTo(0) error = %v, want ErrPageIndexOutOfRange", err)
	}
	tr := NewTracker(0)
	if n.ApproveAndAdvance(tr) {
		t.Error("ApproveAndAdvance moved with zero pages")
	}
}

func TestNavigator_ApproveAndAdvance(t *testing.T) {
	n := NewNavigator(2)
	tr := NewTracker(2)

	if !n.ApproveAndAdvance(tr) {
		t.Error("ApproveAndAdvance on first page did not move")
	}
	if n.ApproveAndAdvance(tr) {
		t.Error("ApproveAndAdvance on last page moved")
	}
	if n.Current() != 1 {
		t.Errorf("Current() = %d, want 1", n.Current())
	}
	for i := 0; i < 2; i++ {
		if st, _ := tr.Status(i); st != StatusApproved {
			t.Errorf("Status(%d) = %q, want approved", i, st)
		}
	}
}
