package review

import "fmt"

// Page is one document page. Pages are fixed for the life of a session.
type Page struct {
	Index       int    `json:"index"`
	DisplayName string `json:"display_name"`
	ImageRef    string `json:"image_ref"`
}

// IndexedRecord pairs a record with its position in the dataset.
type IndexedRecord struct {
	Index  int
	Record *Record
}

// Store owns the original and working copies of the dataset. The original
// is never mutated; the working copy changes only through UpdateField and
// RevertPage.
type Store struct {
	original []*Record
	working  []*Record
	// byPage lists record indices per page index, in dataset order.
	byPage [][]int
	pageOf []int
}

// NewStore snapshots records as the original dataset and seeds the working
// dataset with a second independent copy. Every record must carry a
// source_page within [1, len(pages)].
func NewStore(records []*Record, pages []Page) (*Store, error) {
	s := &Store{
		original: make([]*Record, len(records)),
		working:  make([]*Record, len(records)),
		byPage:   make([][]int, len(pages)),
		pageOf:   make([]int, len(records)),
	}
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrInvalidDataset, i)
		}
		if !rec.Has(SourcePageField) {
			return nil, fmt.Errorf("%w: record %d has no %s", ErrInvalidDataset, i, SourcePageField)
		}
		page, ok := rec.SourcePage()
		if !ok {
			v, _ := rec.Get(SourcePageField)
			return nil, fmt.Errorf("%w: record %d has non-integer %s %v", ErrInvalidDataset, i, SourcePageField, v)
		}
		if page > len(pages) {
			return nil, fmt.Errorf("%w: record %d has %s %d outside [1, %d]",
				ErrInvalidDataset, i, SourcePageField, page, len(pages))
		}
		s.original[i] = rec.Clone()
		s.working[i] = rec.Clone()
		s.pageOf[i] = page - 1
		s.byPage[page-1] = append(s.byPage[page-1], i)
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.working)
}

// PageCount returns the number of pages the store was loaded with.
func (s *Store) PageCount() int {
	return len(s.byPage)
}

// Record returns a copy of the working record.
func (s *Store) Record(recordIndex int) (*Record, error) {
	if err := s.checkRecord(recordIndex); err != nil {
		return nil, err
	}
	return s.working[recordIndex].Clone(), nil
}

// Original returns a copy of the original record.
func (s *Store) Original(recordIndex int) (*Record, error) {
	if err := s.checkRecord(recordIndex); err != nil {
		return nil, err
	}
	return s.original[recordIndex].Clone(), nil
}

// PageOf returns the 0-based page index of a record.
func (s *Store) PageOf(recordIndex int) (int, error) {
	if err := s.checkRecord(recordIndex); err != nil {
		return 0, err
	}
	return s.pageOf[recordIndex], nil
}

// RecordsForPage returns copies of the working records on a page in dataset
// order. Pages outside the store yield no records.
func (s *Store) RecordsForPage(pageIndex int) []IndexedRecord {
	if pageIndex < 0 || pageIndex >= len(s.byPage) {
		return nil
	}
	out := make([]IndexedRecord, 0, len(s.byPage[pageIndex]))
	for _, i := range s.byPage[pageIndex] {
		out = append(out, IndexedRecord{Index: i, Record: s.working[i].Clone()})
	}
	return out
}

// UpdateField coerces raw to the type of the original field value, stores
// it in the working record, and reports whether the stored value now
// differs from the original.
func (s *Store) UpdateField(recordIndex int, field, raw string) (bool, error) {
	if err := s.checkRecord(recordIndex); err != nil {
		return false, err
	}
	if field == SourcePageField {
		return false, fmt.Errorf("%w: %s", ErrProtectedField, field)
	}

	original, _ := s.original[recordIndex].Get(field)
	value, err := coerce(original, raw)
	if err != nil {
		return false, fmt.Errorf("record %d field %q: %w", recordIndex, field, err)
	}

	s.working[recordIndex].Set(field, value)
	return fieldDiffers(s.original[recordIndex], s.working[recordIndex], field), nil
}

// RevertPage replaces every working record on the page with a fresh copy of
// its original. Pages outside the store are ignored.
func (s *Store) RevertPage(pageIndex int) {
	if pageIndex < 0 || pageIndex >= len(s.byPage) {
		return
	}
	for _, i := range s.byPage[pageIndex] {
		s.working[i] = s.original[i].Clone()
	}
}

// IsRecordModified compares the working and original record across all
// fields, sidecar fields included.
func (s *Store) IsRecordModified(recordIndex int) bool {
	if recordIndex < 0 || recordIndex >= len(s.working) {
		return false
	}
	return !s.working[recordIndex].Equal(s.original[recordIndex])
}

// Working returns copies of all working records in dataset order.
func (s *Store) Working() []*Record {
	out := make([]*Record, len(s.working))
	for i, rec := range s.working {
		out[i] = rec.Clone()
	}
	return out
}

func (s *Store) checkRecord(recordIndex int) error {
	if recordIndex < 0 || recordIndex >= len(s.working) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrRecordIndexOutOfRange, recordIndex, len(s.working))
	}
	return nil
}
