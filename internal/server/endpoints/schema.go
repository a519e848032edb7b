package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/dataset"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// SchemaResponse carries the optional field hints.
type SchemaResponse struct {
	Fields dataset.Schema `json:"fields"`
}

// SchemaEndpoint handles GET /api/schema.
type SchemaEndpoint struct{}

var _ api.Endpoint = (*SchemaEndpoint)(nil)

func (e *SchemaEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/schema", e.handler
}

func (e *SchemaEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Field schema
//	@Description	Optional per-field hints loaded with the dataset
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	SchemaResponse
//	@Router			/api/schema [get]
func (e *SchemaEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := SchemaResponse{Fields: dataset.Schema{}}
	if p := svcctx.PresenterFrom(r.Context()); p != nil && p.Schema() != nil {
		resp.Fields = p.Schema()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *SchemaEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show field hints of the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SchemaResponse
			if err := client.Get(cmd.Context(), "/api/schema", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ZoomRange describes the page image zoom limits in percent.
type ZoomRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// KeymapResponse lists keyboard bindings for the review UI.
type KeymapResponse struct {
	Bindings []shell.Binding `json:"bindings"`
	Zoom     ZoomRange       `json:"zoom"`
}

// KeymapEndpoint handles GET /api/keymap.
type KeymapEndpoint struct{}

var _ api.Endpoint = (*KeymapEndpoint)(nil)

func (e *KeymapEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/keymap", e.handler
}

func (e *KeymapEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Keyboard bindings
//	@Description	Keyboard shortcuts of the review UI
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	KeymapResponse
//	@Router			/api/keymap [get]
func (e *KeymapEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, KeymapResponse{
		Bindings: shell.Keymap(),
		Zoom: ZoomRange{
			Min:     shell.ZoomMin,
			Max:     shell.ZoomMax,
			Step:    shell.ZoomStep,
			Default: shell.ZoomDefault,
		},
	})
}

func (e *KeymapEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "keymap",
		Short: "List keyboard shortcuts of the review UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp KeymapResponse
			if err := client.Get(cmd.Context(), "/api/keymap", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
