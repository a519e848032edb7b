package testutil

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Fixture is a review dataset written to disk.
type Fixture struct {
	PagesDir    string
	DatasetPath string
	SchemaPath  string
}

// FixtureRecords is the dataset written by WriteFixture: three pages, with
// a sidecar confidence on page 1 and an internal field on page 3.
const FixtureRecords = `{
  "extraction_metadata": {"source_document": "invoice_batch", "model": "extractor-v2"},
  "records": [
    {"source_page": 1, "vendor": "Acme Corp", "amount": 10, "amount_confidence": "low"},
    {"source_page": 2, "vendor": "Globex", "amount": 20},
    {"source_page": 2, "vendor": "Initech", "amount": 25.5},
    {"source_page": 3, "memo": "paid in full", "_extractor": "v2"}
  ]
}`

// FixtureSchema is the field schema written by WriteFixture.
const FixtureSchema = `properties:
  vendor:
    type: string
    description: Payee name
  amount:
    type: number
    description: Invoice total
`

// WriteFixture writes pages page_001.png through page_00N.png, the fixture
// dataset and its schema under a temp directory.
func WriteFixture(t *testing.T, pages int) Fixture {
	t.Helper()

	dir := t.TempDir()
	f := Fixture{
		PagesDir:    filepath.Join(dir, "pages"),
		DatasetPath: filepath.Join(dir, "dataset.json"),
		SchemaPath:  filepath.Join(dir, "schema.yaml"),
	}
	if err := os.MkdirAll(f.PagesDir, 0o755); err != nil {
		t.Fatalf("failed to create pages dir: %v", err)
	}
	for i := 1; i <= pages; i++ {
		WritePNG(t, filepath.Join(f.PagesDir, fmt.Sprintf("page_%03d.png", i)))
	}
	if err := os.WriteFile(f.DatasetPath, []byte(FixtureRecords), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	if err := os.WriteFile(f.SchemaPath, []byte(FixtureSchema), 0o644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}
	return f
}

// WriteJSON marshals v to path.
func WriteJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WritePNG writes a 2x2 PNG to path.
func WritePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}
