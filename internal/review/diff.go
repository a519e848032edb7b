package review

import "iter"

// Change is one field whose working value differs from the original.
type Change struct {
	RecordIndex   int    `json:"record_index"`
	SourcePage    int    `json:"source_page"`
	Field         string `json:"field"`
	OriginalValue any    `json:"original_value"`
	NewValue      any    `json:"new_value"`
}

// Diff compares the working dataset of a Store against its original.
// Nothing is cached; every call reads the current state.
type Diff struct {
	store *Store
}

// NewDiff returns a Diff over the store.
func NewDiff(store *Store) *Diff {
	return &Diff{store: store}
}

// FieldIsEdited reports whether the field's working value differs from the
// original value.
func (d *Diff) FieldIsEdited(recordIndex int, field string) bool {
	s := d.store
	if recordIndex < 0 || recordIndex >= len(s.working) {
		return false
	}
	return fieldDiffers(s.original[recordIndex], s.working[recordIndex], field)
}

// RecordEditCount returns how many records on the page are modified.
func (d *Diff) RecordEditCount(pageIndex int) int {
	s := d.store
	if pageIndex < 0 || pageIndex >= len(s.byPage) {
		return 0
	}
	n := 0
	for _, i := range s.byPage[pageIndex] {
		if s.IsRecordModified(i) {
			n++
		}
	}
	return n
}

// AllChanges yields every differing field, ordered by record index and then
// by the record's original field order. Fields present only in the working
// record follow in the order they were added.
func (d *Diff) AllChanges() iter.Seq[Change] {
	return func(yield func(Change) bool) {
		s := d.store
		for i := range s.working {
			orig, work := s.original[i], s.working[i]
			if work.Equal(orig) {
				continue
			}
			page := s.pageOf[i] + 1
			for _, field := range fieldUnion(orig, work) {
				if !fieldDiffers(orig, work, field) {
					continue
				}
				o, _ := orig.Get(field)
				w, _ := work.Get(field)
				c := Change{
					RecordIndex:   i,
					SourcePage:    page,
					Field:         field,
					OriginalValue: cloneValue(o),
					NewValue:      cloneValue(w),
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Changes collects AllChanges into a slice.
func (d *Diff) Changes() []Change {
	out := make([]Change, 0)
	for c := range d.AllChanges() {
		out = append(out, c)
	}
	return out
}

func fieldUnion(orig, work *Record) []string {
	fields := orig.Keys()
	for _, k := range work.keys {
		if !orig.Has(k) {
			fields = append(fields, k)
		}
	}
	return fields
}

// fieldDiffers treats a field missing from one record and null in the other
// as a difference.
func fieldDiffers(orig, work *Record, field string) bool {
	o, okO := orig.Get(field)
	w, okW := work.Get(field)
	return okO != okW || !valuesEqual(o, w)
}
