// Package dataset loads review inputs from disk: page images, the extracted
// dataset document and an optional field schema.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackzampolin/docreview/internal/review"
)

// Request names the inputs of a review session.
type Request struct {
	PagesDir     string
	DatasetPath  string
	SchemaPath   string // optional
	DocumentName string // optional override
}

// Bundle holds everything needed to start a review session.
type Bundle struct {
	DocumentName string
	Pages        []review.Page
	Records      []*review.Record
	Metadata     map[string]any
	Schema       Schema
}

// Load reads and validates the inputs named by req.
func Load(req Request) (*Bundle, error) {
	pages, err := DiscoverPages(req.PagesDir)
	if err != nil {
		return nil, err
	}

	doc, err := ReadDocument(req.DatasetPath)
	if err != nil {
		return nil, err
	}

	var schema Schema
	if req.SchemaPath != "" {
		schema, err = LoadSchema(req.SchemaPath)
		if err != nil {
			return nil, err
		}
	}

	return &Bundle{
		DocumentName: ResolveDocumentName(req.DocumentName, doc, req.DatasetPath),
		Pages:        pages,
		Records:      doc.Records,
		Metadata:     doc.ExtractionMetadata,
		Schema:       schema,
	}, nil
}

// ReadDocument reads and decodes a dataset file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Decode(data)
}

// DefaultDocumentName names a dataset whose extraction_metadata carries no
// source_document.
const DefaultDocumentName = "Document"

// ResolveDocumentName picks the explicit name, then the dataset's
// extraction_metadata.source_document. A dataset with extraction_metadata
// but no source_document is named DefaultDocumentName; one without
// extraction_metadata falls back to the dataset file stem.
func ResolveDocumentName(explicit string, doc *Document, datasetPath string) string {
	if explicit != "" {
		return explicit
	}
	if doc != nil && doc.ExtractionMetadata != nil {
		if name, ok := doc.SourceDocument(); ok {
			return name
		}
		return DefaultDocumentName
	}
	base := filepath.Base(datasetPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewSession starts a review session over the bundle.
func (b *Bundle) NewSession(opts ...review.Option) (*review.Session, error) {
	return review.NewSession(b.DocumentName, b.Pages, b.Records, opts...)
}
