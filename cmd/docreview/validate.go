package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/dataset"
)

// ValidateResult summarizes a dataset that passed validation.
type ValidateResult struct {
	Document string `json:"document" yaml:"document"`
	Records  int    `json:"records" yaml:"records"`
	Pages    int    `json:"pages,omitempty" yaml:"pages,omitempty"`
	Fields   int    `json:"schema_fields,omitempty" yaml:"schema_fields,omitempty"`
}

var (
	validatePages  string
	validateSchema string
	validateName   string
)

var validateCmd = &cobra.Command{
	Use:   "validate <dataset.json>",
	Short: "Check a dataset before starting a review",
	Long: `Validate a dataset document against the dataset schema.

With --pages the page images are discovered too and every record's
source_page must fall within them, exactly as "docreview serve" would check.

Examples:
  docreview validate extracted.json
  docreview validate extracted.json --pages ./pages --schema fields.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := requireFile("dataset", path); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := dataset.Validate(data); err != nil {
			return err
		}

		if validatePages == "" {
			doc, err := dataset.Decode(data)
			if err != nil {
				return err
			}
			var fields int
			if validateSchema != "" {
				schema, err := dataset.LoadSchema(validateSchema)
				if err != nil {
					return err
				}
				fields = len(schema)
			}
			return api.Output(ValidateResult{
				Document: dataset.ResolveDocumentName(validateName, doc, path),
				Records:  len(doc.Records),
				Fields:   fields,
			})
		}

		bundle, err := dataset.Load(dataset.Request{
			PagesDir:     validatePages,
			DatasetPath:  path,
			SchemaPath:   validateSchema,
			DocumentName: validateName,
		})
		if err != nil {
			return err
		}
		// Building a session checks the page mapping of every record.
		if _, err := bundle.NewSession(); err != nil {
			return fmt.Errorf("dataset does not match pages: %w", err)
		}
		return api.Output(ValidateResult{
			Document: bundle.DocumentName,
			Records:  len(bundle.Records),
			Pages:    len(bundle.Pages),
			Fields:   len(bundle.Schema),
		})
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePages, "pages", "", "Directory of page images to check source_page against")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Optional field schema (JSON or YAML)")
	validateCmd.Flags().StringVar(&validateName, "name", "", "Document name override")

	rootCmd.AddCommand(validateCmd)
}
