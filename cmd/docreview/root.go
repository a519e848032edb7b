package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/config"
	"github.com/jackzampolin/docreview/internal/home"
	"github.com/jackzampolin/docreview/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "docreview",
	Short: "Human review of machine-extracted document data",
	Long: `docreview serves a review session over extracted document data.

A reviewer walks the scanned pages next to the records extracted from them,
corrects field values and approves page by page. The session can be
exported at any time as approved records, all records with their page
status, or a log of every change.

Inputs:
  - a directory of page images (page_001.png, page_002.png, ...)
  - a dataset JSON document: {"extraction_metadata": {...}, "records": [...]}
  - an optional field schema (JSON or YAML) with per-field hints`,
	Version:      version.GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.docreview/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "docreview home directory (default: ~/.docreview)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// getHome returns the home directory from --home or the default.
func getHome() (*home.Dir, error) {
	return home.New(homeDir)
}

// loadConfig loads configuration from --config, the home directory or the
// default search path.
func loadConfig(h *home.Dir) (*config.Manager, error) {
	path := cfgFile
	if path == "" && h.ConfigExists() {
		path = h.ConfigPath()
	}
	return config.NewManager(path)
}
