package dataset

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/docreview/internal/review"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDiscoverPages(t *testing.T) {
	t.Run("png before jpg, sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"page_002.png", "page_001.png", "page_003.jpg", "page_000.jpeg", "cover.png", "page_notes.txt"} {
			writeFile(t, filepath.Join(dir, name), "x")
		}

		pages, err := DiscoverPages(dir)
		if err != nil {
			t.Fatalf("DiscoverPages() error = %v", err)
		}
		want := []string{"page_001.png", "page_002.png", "page_000.jpeg", "page_003.jpg"}
		if len(pages) != len(want) {
			t.Fatalf("got %d pages, want %d", len(pages), len(want))
		}
		for i, p := range pages {
			if filepath.Base(p.ImageRef) != want[i] {
				t.Errorf("page %d = %s, want %s", i, filepath.Base(p.ImageRef), want[i])
			}
			if p.Index != i {
				t.Errorf("page %d Index = %d", i, p.Index)
			}
		}
		if pages[2].DisplayName != "Page 3" {
			t.Errorf("DisplayName = %q, want Page 3", pages[2].DisplayName)
		}
	})

	t.Run("no images", func(t *testing.T) {
		_, err := DiscoverPages(t.TempDir())
		if !errors.Is(err, ErrNoPages) {
			t.Errorf("error = %v, want ErrNoPages", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := DiscoverPages(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestImageContentType(t *testing.T) {
	tests := map[string]string{
		"page_001.png":  "image/png",
		"page_001.JPG":  "image/jpeg",
		"page_001.jpeg": "image/jpeg",
		"page_001.tif":  "application/octet-stream",
	}
	for ref, want := range tests {
		if got := ImageContentType(ref); got != want {
			t.Errorf("ImageContentType(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid", `{"records":[{"source_page":1,"amount":3}]}`, false},
		{"valid with metadata", `{"extraction_metadata":{"source_document":"x"},"records":[]}`, false},
		{"missing records", `{"items":[]}`, true},
		{"records not array", `{"records":{}}`, true},
		{"record not object", `{"records":[1]}`, true},
		{"missing source_page", `{"records":[{"amount":3}]}`, true},
		{"string source_page", `{"records":[{"source_page":"1"}]}`, true},
		{"zero source_page", `{"records":[{"source_page":0}]}`, true},
		{"fractional source_page", `{"records":[{"source_page":1.5}]}`, true},
		{"not json", `{records`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("error = %v, want ErrSchemaViolation", err)
			}
			if err != nil && !errors.Is(err, review.ErrInvalidDataset) {
				t.Errorf("error = %v, want review.ErrInvalidDataset", err)
			}
		})
	}
}

func TestDecode_PreservesFieldOrder(t *testing.T) {
	doc, err := Decode([]byte(`{"records":[{"zeta":1,"source_page":1,"alpha":"a"}]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	keys := doc.Records[0].Keys()
	want := []string{"zeta", "source_page", "alpha"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}

	b, _ := json.Marshal(doc.Records[0])
	if string(b) != `{"zeta":1,"source_page":1,"alpha":"a"}` {
		t.Errorf("re-encoded record = %s", b)
	}
}

func TestResolveDocumentName(t *testing.T) {
	withMeta := &Document{ExtractionMetadata: map[string]any{"source_document": "Budget 2019"}}
	empty := &Document{}
	noSource := &Document{ExtractionMetadata: map[string]any{"model": "gpt"}}
	blankSource := &Document{ExtractionMetadata: map[string]any{"source_document": ""}}

	tests := []struct {
		name     string
		explicit string
		doc      *Document
		want     string
	}{
		{"explicit wins", "Override", withMeta, "Override"},
		{"metadata", "", withMeta, "Budget 2019"},
		{"metadata without source_document", "", noSource, "Document"},
		{"blank source_document", "", blankSource, "Document"},
		{"file stem", "", empty, "extracted"},
		{"nil document", "", nil, "extracted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDocumentName(tt.explicit, tt.doc, "/data/extracted.json"); got != tt.want {
				t.Errorf("ResolveDocumentName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSchema(t *testing.T) {
	t.Run("json schema properties", func(t *testing.T) {
		s, err := ParseSchema([]byte(`{"type":"object","properties":{"amount":{"type":["number","null"],"description":"Total"}}}`), ".json")
		if err != nil {
			t.Fatalf("ParseSchema() error = %v", err)
		}
		f, ok := s.Lookup("amount")
		if !ok || f.Type != "number|null" || f.Description != "Total" {
			t.Errorf("amount = %+v, %v", f, ok)
		}
		if _, ok := s.Lookup("type"); ok {
			t.Error("top-level keys leaked into unwrapped schema")
		}
	})

	t.Run("yaml field map", func(t *testing.T) {
		s, err := ParseSchema([]byte("vendor:\n  type: string\n  enum: [acme, globex]\nnotes: string\n"), ".yaml")
		if err != nil {
			t.Fatalf("ParseSchema() error = %v", err)
		}
		if len(s["vendor"].Enum) != 2 {
			t.Errorf("vendor enum = %v", s["vendor"].Enum)
		}
		if s["notes"].Type != "string" {
			t.Errorf("notes type = %q", s["notes"].Type)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := ParseSchema([]byte(`[`), ".json"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("nil schema lookup", func(t *testing.T) {
		var s Schema
		if _, ok := s.Lookup("x"); ok {
			t.Error("Lookup on nil schema reported a field")
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	pagesDir := filepath.Join(dir, "pages")
	os.Mkdir(pagesDir, 0o755)
	writeFile(t, filepath.Join(pagesDir, "page_001.png"), "x")
	writeFile(t, filepath.Join(pagesDir, "page_002.png"), "x")

	datasetPath := filepath.Join(dir, "extracted.json")
	writeFile(t, datasetPath, `{
  "extraction_metadata": {"source_document": "ledger"},
  "records": [
    {"source_page": 1, "amount": 10},
    {"source_page": 2, "amount": 20}
  ]
}`)
	schemaPath := filepath.Join(dir, "schema.yaml")
	writeFile(t, schemaPath, "amount:\n  type: number\n")

	b, err := Load(Request{PagesDir: pagesDir, DatasetPath: datasetPath, SchemaPath: schemaPath})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.DocumentName != "ledger" || len(b.Pages) != 2 || len(b.Records) != 2 {
		t.Fatalf("bundle = %+v", b)
	}
	if b.Schema["amount"].Type != "number" {
		t.Errorf("schema = %+v", b.Schema)
	}

	s, err := b.NewSession()
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.PageCount() != 2 || s.RecordCount() != 2 {
		t.Errorf("session has %d pages, %d records", s.PageCount(), s.RecordCount())
	}

	t.Run("missing dataset", func(t *testing.T) {
		_, err := Load(Request{PagesDir: pagesDir, DatasetPath: filepath.Join(dir, "missing.json")})
		if !errors.Is(err, ErrDatasetNotFound) {
			t.Errorf("error = %v, want ErrDatasetNotFound", err)
		}
	})

	t.Run("record beyond last page", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		writeFile(t, bad, `{"records":[{"source_page":3}]}`)
		b, err := Load(Request{PagesDir: pagesDir, DatasetPath: bad})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if _, err := b.NewSession(); err == nil {
			t.Error("NewSession() accepted a record on a missing page")
		}
	})

	for name, doc := range map[string]string{
		"string source_page": `{"records":[{"source_page":"1"}]}`,
		"zero source_page":   `{"records":[{"source_page":0}]}`,
	} {
		t.Run(name+" is an invalid dataset", func(t *testing.T) {
			bad := filepath.Join(t.TempDir(), "bad.json")
			writeFile(t, bad, doc)
			_, err := Load(Request{PagesDir: pagesDir, DatasetPath: bad})
			if !errors.Is(err, review.ErrInvalidDataset) {
				t.Errorf("error = %v, want review.ErrInvalidDataset", err)
			}
			if !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("error = %v, want ErrSchemaViolation", err)
			}
		})
	}

	t.Run("metadata without source_document", func(t *testing.T) {
		unnamed := filepath.Join(t.TempDir(), "unnamed.json")
		writeFile(t, unnamed, `{"extraction_metadata":{"model":"x"},"records":[{"source_page":1}]}`)
		b, err := Load(Request{PagesDir: pagesDir, DatasetPath: unnamed})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if b.DocumentName != DefaultDocumentName {
			t.Errorf("DocumentName = %q, want %q", b.DocumentName, DefaultDocumentName)
		}
	})
}

func TestPageImageName(t *testing.T) {
	if got := PageImageName(7, "png"); got != "page_007.png" {
		t.Errorf("PageImageName() = %q", got)
	}
}

func TestExtractPDFPages_MissingFile(t *testing.T) {
	_, err := ExtractPDFPages(t.Context(), filepath.Join(t.TempDir(), "missing.pdf"), t.TempDir(), ExtractOptions{})
	if err == nil {
		t.Error("expected error for missing PDF")
	}
}

func TestExtractPDFPages_Fixture(t *testing.T) {
	fixture := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(fixture); os.IsNotExist(err) {
		t.Skip("test fixture not found")
	}

	outDir := t.TempDir()
	n, err := ExtractPDFPages(t.Context(), fixture, outDir, ExtractOptions{Mode: ExtractEmbedded})
	if err != nil {
		t.Fatalf("ExtractPDFPages() error = %v", err)
	}
	pages, err := DiscoverPages(outDir)
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}
	if len(pages) != n {
		t.Errorf("discovered %d pages, extracted %d", len(pages), n)
	}
}
