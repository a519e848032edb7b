package shell

import (
	"fmt"

	"github.com/jackzampolin/docreview/internal/review"
)

// IntentKind names a user intent.
type IntentKind string

const (
	IntentSelectPage        IntentKind = "selectPage"
	IntentUpdateField       IntentKind = "updateField"
	IntentApproveAndNext    IntentKind = "approveAndNext"
	IntentPrevPage          IntentKind = "prevPage"
	IntentNextPage          IntentKind = "nextPage"
	IntentRevertCurrentPage IntentKind = "revertCurrentPage"
	IntentRequestExport     IntentKind = "requestExport"
)

// Intent is one user action. Only the fields its Kind needs are read.
type Intent struct {
	Kind   IntentKind
	Page   int // IntentSelectPage, 0-based
	Record int // IntentUpdateField
	Field  string
	Value  string
	Export review.ExportKind // IntentRequestExport
}

// Outcome reports what an intent did.
type Outcome struct {
	// Moved is set when the current page changed.
	Moved bool
	// Edited is set when an updated field now differs from the original.
	Edited bool
	// Document is set for IntentRequestExport.
	Document review.Document
}

// Dispatch applies an intent to the session.
func Dispatch(s *review.Session, in Intent) (Outcome, error) {
	before := s.Current()
	var out Outcome

	switch in.Kind {
	case IntentSelectPage:
		if err := s.SelectPage(in.Page); err != nil {
			return Outcome{}, err
		}
	case IntentUpdateField:
		edited, err := s.UpdateField(in.Record, in.Field, in.Value)
		if err != nil {
			return Outcome{}, err
		}
		out.Edited = edited
	case IntentApproveAndNext:
		s.ApproveAndNext()
	case IntentPrevPage:
		s.PrevPage()
	case IntentNextPage:
		s.NextPage()
	case IntentRevertCurrentPage:
		s.RevertCurrentPage()
	case IntentRequestExport:
		doc, err := s.Export(in.Export)
		if err != nil {
			return Outcome{}, err
		}
		out.Document = doc
	default:
		return Outcome{}, fmt.Errorf("unknown intent %q", in.Kind)
	}

	out.Moved = s.Current() != before
	return out, nil
}
