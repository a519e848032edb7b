// Package review holds the state of a document review: the original and
// working copies of extracted records, per-page approval status, the diff
// between the two copies, navigation, and the export projections.
//
// The package performs no I/O. A Session is not safe for concurrent use;
// wrap it in a SyncSession when serving it from multiple goroutines.
package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	// SourcePageField is the required 1-based page number of a record.
	SourcePageField = "source_page"

	// ReviewStatusField is added to records in the all-records export.
	ReviewStatusField = "_review_status"

	// Sidecar suffixes annotate a base field, e.g. "amount_note".
	NoteSuffix       = "_note"
	StatusSuffix     = "_status"
	ConfidenceSuffix = "_confidence"
)

// Record is one extracted item: field names mapped to JSON-shaped values,
// with field insertion order preserved.
type Record struct {
	keys   []string
	fields map[string]any
}

// NewRecord builds a record from alternating name/value pairs.
// It panics if a name is not a string or a value is missing.
func NewRecord(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic("review.NewRecord: odd number of arguments")
	}
	r := &Record{fields: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("review.NewRecord: field name %v is not a string", kv[i]))
		}
		r.Set(name, kv[i+1])
	}
	return r
}

// Get returns the value of a field and whether the field is present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Set stores a copy of v under name. New fields are appended to the order.
func (r *Record) Set(name string, v any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	if _, ok := r.fields[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.fields[name] = cloneValue(v)
}

// Has reports whether the field is present.
func (r *Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Keys returns field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// SourcePage returns the record's 1-based page number. The second result is
// false when the field is missing or not a positive integer.
func (r *Record) SourcePage() (int, bool) {
	v, ok := r.fields[SourcePageField]
	if !ok {
		return 0, false
	}
	f, ok := cloneScalar(v).(float64)
	if !ok || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Note returns the string annotation stored in base+"_note".
func (r *Record) Note(base string) (string, bool) {
	return r.sidecar(base + NoteSuffix)
}

// Status returns the string annotation stored in base+"_status".
func (r *Record) Status(base string) (string, bool) {
	return r.sidecar(base + StatusSuffix)
}

// Confidence returns the string annotation stored in base+"_confidence".
func (r *Record) Confidence(base string) (string, bool) {
	return r.sidecar(base + ConfidenceSuffix)
}

func (r *Record) sidecar(name string) (string, bool) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, s != ""
	}
	return fmt.Sprint(v), true
}

// IsSidecar reports whether name is a note, status or confidence annotation.
func IsSidecar(name string) bool {
	return strings.HasSuffix(name, NoteSuffix) ||
		strings.HasSuffix(name, StatusSuffix) ||
		strings.HasSuffix(name, ConfidenceSuffix)
}

// Clone returns a deep, fully independent copy.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		keys:   make([]string, len(r.keys)),
		fields: make(map[string]any, len(r.fields)),
	}
	copy(out.keys, r.keys)
	for k, v := range r.fields {
		out.fields[k] = cloneValue(v)
	}
	return out
}

// Equal reports whether both records hold the same fields with deeply equal
// values, sidecar fields included. Field order is not significant.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.fields) != len(other.fields) {
		return false
	}
	for k, v := range r.fields {
		ov, ok := other.fields[k]
		if !ok || !valuesEqual(v, ov) {
			return false
		}
	}
	return true
}

func (r *Record) toMap() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = cloneValue(v)
	}
	return out
}

// MarshalJSON writes fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.fields[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the order of its keys.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.keys = nil
	r.fields = make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected record key %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("failed to decode field %q: %w", name, err)
		}
		r.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
