package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ExtractMode selects how page images are produced from a PDF.
type ExtractMode string

const (
	// ExtractRender rasterizes each page with pdftoppm (poppler-utils).
	ExtractRender ExtractMode = "render"
	// ExtractEmbedded pulls the embedded scan image of each page. It needs
	// no external tools but only works for image-only PDFs.
	ExtractEmbedded ExtractMode = "embedded"
)

// ExtractOptions configures ExtractPDFPages.
type ExtractOptions struct {
	Mode   ExtractMode
	DPI    int    // render mode only, default 200
	Format string // render mode only: "png" (default) or "jpg"
	Logger *slog.Logger
}

// PageCount returns the number of pages in a PDF.
func PageCount(pdfPath string) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	n, err := api.PageCount(f, relaxedConfig())
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return n, nil
}

// ExtractPDFPages writes one page_NNN image per PDF page into outDir and
// returns the number of pages written.
func ExtractPDFPages(ctx context.Context, pdfPath, outDir string, opts ExtractOptions) (int, error) {
	if opts.Mode == "" {
		opts.Mode = ExtractRender
	}
	if opts.DPI <= 0 {
		opts.DPI = 200
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	pageCount, err := PageCount(pdfPath)
	if err != nil {
		return 0, err
	}
	opts.Logger.Info("extracting pages", "pdf", filepath.Base(pdfPath), "pages", pageCount, "mode", opts.Mode)

	switch opts.Mode {
	case ExtractRender:
		return renderPages(ctx, pdfPath, outDir, pageCount, opts)
	case ExtractEmbedded:
		return extractEmbedded(pdfPath, outDir, opts.Logger)
	default:
		return 0, fmt.Errorf("unknown extract mode %q", opts.Mode)
	}
}

// PageImageName returns the file name for a 1-based page number.
func PageImageName(pageNum int, ext string) string {
	return fmt.Sprintf("page_%03d.%s", pageNum, ext)
}

func renderPages(ctx context.Context, pdfPath, outDir string, pageCount int, opts ExtractOptions) (int, error) {
	if opts.Format != "png" && opts.Format != "jpg" {
		return 0, fmt.Errorf("unsupported image format %q", opts.Format)
	}

	type result struct {
		pageNum int
		err     error
	}

	results := make(chan result, pageCount)
	sem := make(chan struct{}, runtime.NumCPU())

	for page := 1; page <= pageCount; page++ {
		sem <- struct{}{}
		go func(pageNum int) {
			defer func() { <-sem }()
			results <- result{pageNum: pageNum, err: renderPage(ctx, pdfPath, outDir, pageNum, opts)}
		}(page)
	}

	var firstErr error
	written := 0
	for i := 0; i < pageCount; i++ {
		r := <-results
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to render page %d: %w", r.pageNum, r.err)
			}
			continue
		}
		written++
	}
	return written, firstErr
}

func renderPage(ctx context.Context, pdfPath, outDir string, pageNum int, opts ExtractOptions) error {
	tmpDir, err := os.MkdirTemp("", "docreview-page-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	page := strconv.Itoa(pageNum)
	formatFlag := "-png"
	if opts.Format == "jpg" {
		formatFlag = "-jpeg"
	}

	cmd := exec.CommandContext(ctx, "pdftoppm",
		formatFlag,
		"-f", page,
		"-l", page,
		"-r", strconv.Itoa(opts.DPI),
		"-singlefile",
		pdfPath,
		prefix,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	data, err := os.ReadFile(prefix + "." + opts.Format)
	if err != nil {
		return fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}

	dst := filepath.Join(outDir, PageImageName(pageNum, opts.Format))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write page image: %w", err)
	}
	return nil
}

// extractEmbedded keeps the first PNG or JPEG image found on each page.
func extractEmbedded(pdfPath, outDir string, logger *slog.Logger) (int, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	seen := make(map[int]bool)
	digest := func(img model.Image, _ bool, _ int) error {
		if seen[img.PageNr] {
			return nil
		}
		ext := img.FileType
		if ext != "png" && ext != "jpg" {
			logger.Warn("skipping embedded image", "page", img.PageNr, "type", img.FileType)
			return nil
		}

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, img); err != nil {
			return fmt.Errorf("failed to read image on page %d: %w", img.PageNr, err)
		}
		dst := filepath.Join(outDir, PageImageName(img.PageNr, ext))
		if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write page image: %w", err)
		}
		seen[img.PageNr] = true
		return nil
	}

	if err := api.ExtractImages(f, nil, digest, relaxedConfig()); err != nil {
		return len(seen), fmt.Errorf("failed to extract images: %w", err)
	}
	return len(seen), nil
}

func relaxedConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
