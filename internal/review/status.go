package review

// Status is the review state of a page.
type Status string

const (
	StatusPending  Status = "pending"
	StatusEdited   Status = "edited"
	StatusApproved Status = "approved"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusEdited, StatusApproved:
		return true
	}
	return false
}

// Tracker holds exactly one Status per page.
//
// Transitions:
//
//	pending  -> edited    on a field edit
//	edited   -> pending   on revert
//	pending  -> approved  on approve
//	edited   -> approved  on approve
//
// Approval is sticky: edits and reverts leave an approved page approved.
// Transitions on pages outside the tracker are no-ops.
type Tracker struct {
	statuses []Status
}

// NewTracker returns a tracker with every page pending.
func NewTracker(pageCount int) *Tracker {
	t := &Tracker{statuses: make([]Status, pageCount)}
	for i := range t.statuses {
		t.statuses[i] = StatusPending
	}
	return t
}

// Status returns the status of a page and whether the page exists.
func (t *Tracker) Status(page int) (Status, bool) {
	if !t.valid(page) {
		return "", false
	}
	return t.statuses[page], true
}

// MarkEdited records a field edit on the page.
func (t *Tracker) MarkEdited(page int) {
	if t.valid(page) && t.statuses[page] == StatusPending {
		t.statuses[page] = StatusEdited
	}
}

// Reverted records that the page's records were reset to the original.
func (t *Tracker) Reverted(page int) {
	if t.valid(page) && t.statuses[page] == StatusEdited {
		t.statuses[page] = StatusPending
	}
}

// Approve marks the page approved.
func (t *Tracker) Approve(page int) {
	if t.valid(page) {
		t.statuses[page] = StatusApproved
	}
}

// Progress returns the number of approved pages and the total page count.
func (t *Tracker) Progress() (approved, total int) {
	return t.Count(StatusApproved), len(t.statuses)
}

// Count returns how many pages are in the given status.
func (t *Tracker) Count(s Status) int {
	n := 0
	for _, st := range t.statuses {
		if st == s {
			n++
		}
	}
	return n
}

// Statuses returns a copy of all page statuses indexed by page.
func (t *Tracker) Statuses() []Status {
	out := make([]Status, len(t.statuses))
	copy(out, t.statuses)
	return out
}

func (t *Tracker) valid(page int) bool {
	return page >= 0 && page < len(t.statuses)
}
