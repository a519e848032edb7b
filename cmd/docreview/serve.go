package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/config"
	"github.com/jackzampolin/docreview/internal/dataset"
	"github.com/jackzampolin/docreview/internal/export"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/server"
	"github.com/jackzampolin/docreview/internal/shell"
)

var (
	serveHost    string
	servePort    string
	servePages   string
	serveDataset string
	serveSchema  string
	serveName    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a review session server",
	Long: `Load a dataset and its page images and serve the review session.

The review UI is served at / and the JSON API under /api. Changes live in
memory until exported; use the export endpoints (or the UI) to save them.

Config changes to review.export_dir, review.export_format and log.level
apply to the running server.

Examples:
  docreview serve --pages ./pages --dataset extracted.json
  docreview serve --pages ./pages --dataset extracted.json --schema fields.yaml
  docreview serve --pages ./pages --dataset extracted.json --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		h, err := getHome()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		cfgMgr, err := loadConfig(h)
		if err != nil {
			return err
		}
		cfg := cfgMgr.Get()

		logger, level := config.NewLogger(cfg.Log, os.Stdout)

		bundle, err := dataset.Load(dataset.Request{
			PagesDir:     servePages,
			DatasetPath:  serveDataset,
			SchemaPath:   serveSchema,
			DocumentName: serveName,
		})
		if err != nil {
			return err
		}
		session, err := bundle.NewSession()
		if err != nil {
			return err
		}
		logger.Info("review session loaded",
			"session_id", session.ID(),
			"document", session.DocumentName(),
			"pages", session.PageCount(),
			"records", session.RecordCount(),
		)

		format, err := export.ParseFormat(cfg.Review.ExportFormat)
		if err != nil {
			return err
		}
		exports := export.NewWriter(cfg.ResolveExportDir(h.ExportsDir()), format, logger)

		host, port := serveHost, servePort
		if host == "" {
			host = cfg.Server.Host
		}
		if port == "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:    host,
			Port:    port,
			Session: review.NewSyncSession(session),
			Presenter: shell.NewPresenter(shell.Options{
				InternalPrefix: cfg.Review.InternalPrefix,
				Schema:         bundle.Schema,
			}),
			Exports:       exports,
			Home:          h,
			ConfigManager: cfgMgr,
			Logger:        logger,
			LogLevel:      level,
		})
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from server.host)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from server.port)")
	serveCmd.Flags().StringVar(&servePages, "pages", "", "Directory of page_*.png / page_*.jpg images")
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "", "Dataset JSON document")
	serveCmd.Flags().StringVar(&serveSchema, "schema", "", "Optional field schema (JSON or YAML)")
	serveCmd.Flags().StringVar(&serveName, "name", "", "Document name (default from extraction_metadata.source_document)")
	cobra.CheckErr(serveCmd.MarkFlagRequired("pages"))
	cobra.CheckErr(serveCmd.MarkFlagRequired("dataset"))

	rootCmd.AddCommand(serveCmd)
}

// requireFile returns an error naming flag when path is not a regular file.
func requireFile(flag, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("--%s: %w", flag, err)
	}
	if info.IsDir() {
		return fmt.Errorf("--%s: %s is a directory", flag, path)
	}
	return nil
}
