package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running docreview server via HTTP.

These commands require a running server (docreview serve).
Use --server to specify a custom server URL.

Examples:
  docreview api health                    # Check server health
  docreview api review status             # Progress of the open session
  docreview api pages get 3               # Records on page 3
  docreview api records set 4 amount 15   # Edit a field
  docreview api export download changes   # Download the changes log`,
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review session commands",
}

var pagesAPICmd = &cobra.Command{
	Use:   "pages",
	Short: "Page commands",
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Record editing commands",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export commands",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configuration settings commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func addEndpointCommands(parent *cobra.Command, eps []api.Endpoint) {
	for _, ep := range eps {
		if cmd := ep.Command(getServerURL); cmd != nil {
			parent.AddCommand(cmd)
		}
	}
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	// Health and OpenAPI at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))

	addEndpointCommands(reviewCmd, endpoints.ReviewCommands())
	addEndpointCommands(pagesAPICmd, endpoints.PageCommands())
	addEndpointCommands(recordsCmd, endpoints.RecordCommands())
	addEndpointCommands(exportCmd, endpoints.ExportCommands())
	addEndpointCommands(settingsCmd, endpoints.SettingsCommands())

	apiCmd.AddCommand(reviewCmd)
	apiCmd.AddCommand(pagesAPICmd)
	apiCmd.AddCommand(recordsCmd)
	apiCmd.AddCommand(exportCmd)
	apiCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(apiCmd)
}
