package shell

import (
	"errors"
	"testing"

	"github.com/jackzampolin/docreview/internal/review"
)

func TestDispatch(t *testing.T) {
	s := newTestSession(t)

	out, err := Dispatch(s, Intent{Kind: IntentUpdateField, Record: 0, Field: "vendor", Value: "Globex"})
	if err != nil || !out.Edited || out.Moved {
		t.Fatalf("updateField = %+v, %v", out, err)
	}

	out, err = Dispatch(s, Intent{Kind: IntentApproveAndNext})
	if err != nil || !out.Moved {
		t.Fatalf("approveAndNext = %+v, %v", out, err)
	}
	if st, _ := s.Status(0); st != review.StatusApproved {
		t.Errorf("status(0) = %q", st)
	}

	out, _ = Dispatch(s, Intent{Kind: IntentNextPage})
	if out.Moved {
		t.Error("nextPage on last page moved")
	}

	out, _ = Dispatch(s, Intent{Kind: IntentPrevPage})
	if !out.Moved || s.Current() != 0 {
		t.Errorf("prevPage = %+v, current %d", out, s.Current())
	}

	if _, err := Dispatch(s, Intent{Kind: IntentSelectPage, Page: 9}); !errors.Is(err, review.ErrPageIndexOutOfRange) {
		t.Errorf("selectPage error = %v", err)
	}

	Dispatch(s, Intent{Kind: IntentRevertCurrentPage})
	if s.IsRecordModified(0) {
		t.Error("revertCurrentPage left record modified")
	}

	out, err = Dispatch(s, Intent{Kind: IntentRequestExport, Export: review.ExportChanges})
	if err != nil || out.Document == nil || out.Document.Kind() != review.ExportChanges {
		t.Errorf("requestExport = %+v, %v", out, err)
	}

	if _, err := Dispatch(s, Intent{Kind: "dance"}); err == nil {
		t.Error("expected error for unknown intent")
	}
}

func TestDispatch_InvalidValue(t *testing.T) {
	s := newTestSession(t)
	_, err := Dispatch(s, Intent{Kind: IntentUpdateField, Record: 1, Field: "amount", Value: "twenty"})
	if !errors.Is(err, review.ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
}
