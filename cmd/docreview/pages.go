package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/config"
	"github.com/jackzampolin/docreview/internal/dataset"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Prepare page images",
}

// ExtractResult reports where page images were written.
type ExtractResult struct {
	PDF   string `json:"pdf" yaml:"pdf"`
	Dir   string `json:"dir" yaml:"dir"`
	Pages int    `json:"pages" yaml:"pages"`
}

var (
	extractMode   string
	extractDPI    int
	extractFormat string
	extractOut    string
)

var pagesExtractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Write page_NNN images from a scanned PDF",
	Long: `Extract one image per page from a PDF, named page_001.png, page_002.png, ...
so the directory can be passed to "docreview serve --pages".

Modes:
  render    rasterize each page with pdftoppm (poppler-utils must be installed)
  embedded  pull the embedded scan image of each page (image-only PDFs)

Examples:
  docreview pages extract invoices.pdf
  docreview pages extract invoices.pdf --mode embedded --out ./pages
  docreview pages extract invoices.pdf --dpi 300 --format jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]
		if err := requireFile("pdf", pdfPath); err != nil {
			return err
		}

		mode := dataset.ExtractMode(strings.ToLower(extractMode))
		switch mode {
		case dataset.ExtractRender, dataset.ExtractEmbedded:
		default:
			return fmt.Errorf("unknown mode %q: use render or embedded", extractMode)
		}

		h, err := getHome()
		if err != nil {
			return err
		}
		outDir := extractOut
		if outDir == "" {
			if outDir, err = h.EnsurePagesDir(pdfPath); err != nil {
				return err
			}
		} else if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		logger, _ := config.NewLogger(config.LogCfg{Level: "info"}, os.Stderr)
		n, err := dataset.ExtractPDFPages(cmd.Context(), pdfPath, outDir, dataset.ExtractOptions{
			Mode:   mode,
			DPI:    extractDPI,
			Format: extractFormat,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		return api.Output(ExtractResult{PDF: pdfPath, Dir: outDir, Pages: n})
	},
}

func init() {
	pagesExtractCmd.Flags().StringVar(&extractMode, "mode", string(dataset.ExtractRender), "Extraction mode: render or embedded")
	pagesExtractCmd.Flags().IntVar(&extractDPI, "dpi", 200, "Render resolution (render mode)")
	pagesExtractCmd.Flags().StringVar(&extractFormat, "format", "png", "Image format: png or jpg (render mode)")
	pagesExtractCmd.Flags().StringVar(&extractOut, "out", "", "Output directory (default: ~/.docreview/pages/<pdf name>)")

	pagesCmd.AddCommand(pagesExtractCmd)
	rootCmd.AddCommand(pagesCmd)
}
