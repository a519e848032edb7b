package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jackzampolin/docreview/internal/review"
)

//go:embed dataset.schema.json
var documentSchemaJSON []byte

var (
	documentSchemaOnce sync.Once
	documentSchema     *jsonschema.Schema
	documentSchemaErr  error
)

// Document is the decoded dataset file.
type Document struct {
	ExtractionMetadata map[string]any   `json:"extraction_metadata,omitempty"`
	Records            []*review.Record `json:"records"`
}

// SourceDocument returns extraction_metadata.source_document if present.
func (d *Document) SourceDocument() (string, bool) {
	if d.ExtractionMetadata == nil {
		return "", false
	}
	s, ok := d.ExtractionMetadata["source_document"].(string)
	return s, ok && s != ""
}

// Validate checks a raw dataset document against the dataset schema.
func Validate(data []byte) error {
	schema, err := compiledDocumentSchema()
	if err != nil {
		return err
	}

	doc, err := unmarshalJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %w: invalid JSON: %v", review.ErrInvalidDataset, ErrSchemaViolation, err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %w: %s", review.ErrInvalidDataset, ErrSchemaViolation, validationSummary(verr))
		}
		return fmt.Errorf("%w: %w: %v", review.ErrInvalidDataset, ErrSchemaViolation, err)
	}
	return nil
}

// Decode validates and decodes a dataset document. Record field order is
// kept as written.
func Decode(data []byte) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if doc.Records == nil {
		doc.Records = []*review.Record{}
	}
	return &doc, nil
}

// unmarshalJSON decodes data the way jsonschema/v5 expects instances:
// numbers as json.Number, and no trailing data after the value.
func unmarshalJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid character after top-level value")
	}
	return v, nil
}

func compiledDocumentSchema() (*jsonschema.Schema, error) {
	documentSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("dataset.schema.json", bytes.NewReader(documentSchemaJSON)); err != nil {
			documentSchemaErr = fmt.Errorf("failed to load dataset schema: %w", err)
			return
		}
		documentSchema, documentSchemaErr = compiler.Compile("dataset.schema.json")
		if documentSchemaErr != nil {
			documentSchemaErr = fmt.Errorf("failed to compile dataset schema: %w", documentSchemaErr)
		}
	})
	return documentSchema, documentSchemaErr
}

// validationSummary returns the deepest cause of a validation failure,
// which names the offending location.
func validationSummary(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	loc := verr.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, verr.Message)
}
