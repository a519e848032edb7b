// Package export serializes review export documents to JSON or XLSX and
// saves them under the exports directory.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jackzampolin/docreview/internal/review"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}

// Filename returns "{documentName}_{kind}.{format}". Path separators in the
// document name are replaced with underscores so the result is always a
// single path element.
func Filename(documentName string, kind review.ExportKind, format Format) string {
	name := kind.Filename(sanitizeName(documentName))
	if format == FormatXLSX {
		name = strings.TrimSuffix(name, ".json") + ".xlsx"
	}
	return name
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
}

// MarshalJSON encodes a document as JSON indented with two spaces.
func MarshalJSON(doc review.Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s export: %w", doc.Kind(), err)
	}
	return b, nil
}

// Render encodes a document in the given format.
func Render(doc review.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return MarshalJSON(doc)
	case FormatXLSX:
		return RenderXLSX(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Writer saves export documents into a directory. Its directory and default
// format can be changed while it is in use.
type Writer struct {
	mu     sync.RWMutex
	dir    string
	format Format
	logger *slog.Logger
}

// NewWriter returns a writer for dir. An empty format means JSON and a nil
// logger uses slog.Default().
func NewWriter(dir string, format Format, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	if format == "" {
		format = FormatJSON
	}
	return &Writer{dir: dir, format: format, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dir
}

// Format returns the default format.
func (w *Writer) Format() Format {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.format
}

// Configure replaces the output directory and default format. Empty values
// keep the current setting.
func (w *Writer) Configure(dir string, format Format) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir != "" {
		w.dir = dir
	}
	if format != "" {
		w.format = format
	}
}

// Save renders doc and writes it as {documentName}_{kind}.{format},
// replacing any previous export of the same kind. An empty format uses the
// writer's default. It returns the file path.
func (w *Writer) Save(doc review.Document, documentName string, format Format) (string, error) {
	start := time.Now()
	dir := w.Dir()
	if format == "" {
		format = w.Format()
	}

	data, err := Render(doc, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	path := filepath.Join(dir, Filename(documentName, doc.Kind(), format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	w.logger.Info("export saved",
		"kind", doc.Kind(),
		"format", format,
		"path", path,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}
