package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// KeyPressRequest is a key press from the review UI. Zoom is the client's
// current zoom level in percent.
type KeyPressRequest struct {
	Key    string `json:"key"`
	Ctrl   bool   `json:"ctrl,omitempty"`
	Typing bool   `json:"typing,omitempty"`
	Zoom   int    `json:"zoom,omitempty"`
}

// KeyPressResponse reports what a key press did. Navigation is set only
// when the action changed the session.
type KeyPressResponse struct {
	Action     shell.Action        `json:"action,omitempty"`
	Handled    bool                `json:"handled"`
	Zoom       int                 `json:"zoom"`
	Navigation *NavigationResponse `json:"navigation,omitempty"`
}

// KeyPressEndpoint handles POST /api/keys.
type KeyPressEndpoint struct{}

var _ api.Endpoint = (*KeyPressEndpoint)(nil)

func (e *KeyPressEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/keys", e.handler
}

func (e *KeyPressEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Key press
//	@Description	Resolve a keyboard shortcut and apply it. Navigation keys change the session, zoom keys return the new zoom level.
//	@Tags			review
//	@Accept			json
//	@Produce		json
//	@Param			request	body		KeyPressRequest	true	"Key press"
//	@Success		200		{object}	KeyPressResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/keys [post]
func (e *KeyPressEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req KeyPressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	zoom := shell.ZoomAt(req.Zoom)
	resp := KeyPressResponse{Zoom: zoom.Level()}
	action, ok := shell.ResolveKey(req.Key, req.Ctrl, req.Typing)
	if !ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Action = action
	resp.Handled = true

	if zoom.Apply(action) {
		resp.Zoom = zoom.Level()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	in, ok := shell.IntentFor(action)
	if !ok {
		// Opening the export dialog stays in the client.
		writeJSON(w, http.StatusOK, resp)
		return
	}

	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}
	nav := &NavigationResponse{}
	err := svc.Session.Do(func(s *review.Session) error {
		out, err := shell.Dispatch(s, in)
		if err != nil {
			return err
		}
		nav.Moved = out.Moved
		nav.Summary = svc.Presenter.Summary(s)
		return nil
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}
	resp.Navigation = nav

	svcctx.LoggerFrom(r.Context()).Info("key press",
		"key", req.Key,
		"action", action,
		"current_page", nav.Summary.CurrentPage,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (e *KeyPressEndpoint) Command(getServerURL func() string) *cobra.Command {
	var ctrl bool
	var zoom int
	cmd := &cobra.Command{
		Use:   "key <key>",
		Short: "Send a keyboard shortcut to the review session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp KeyPressResponse
			req := KeyPressRequest{Key: args[0], Ctrl: ctrl, Zoom: zoom}
			if err := client.Post(cmd.Context(), "/api/keys", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().BoolVar(&ctrl, "ctrl", false, "hold Ctrl or Cmd")
	cmd.Flags().IntVar(&zoom, "zoom", shell.ZoomDefault, "current zoom level in percent")
	return cmd
}
