package endpoints

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// UpdateFieldRequest is the request body for editing a field. Value is the
// raw text typed by the reviewer.
type UpdateFieldRequest struct {
	Value string `json:"value"`
}

// UpdateFieldResponse reports the edited record.
type UpdateFieldResponse struct {
	Edited bool             `json:"edited"`
	Record shell.RecordView `json:"record"`
	Page   review.Status    `json:"page_status"`
}

// UpdateFieldEndpoint handles PUT /api/records/{record_index}/fields/{field}.
type UpdateFieldEndpoint struct{}

var _ api.Endpoint = (*UpdateFieldEndpoint)(nil)

func (e *UpdateFieldEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/records/{record_index}/fields/{field}", e.handler
}

func (e *UpdateFieldEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Edit a field
//	@Description	Set a field from raw input, coerced to the type of the original value
//	@Tags			records
//	@Accept			json
//	@Produce		json
//	@Param			record_index	path		int					true	"Record index (0-based)"
//	@Param			field			path		string				true	"Field name"
//	@Param			request			body		UpdateFieldRequest	true	"New value"
//	@Success		200				{object}	UpdateFieldResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		503				{object}	ErrorResponse
//	@Router			/api/records/{record_index}/fields/{field} [put]
func (e *UpdateFieldEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	recordIndex, err := strconv.Atoi(r.PathValue("record_index"))
	if err != nil || recordIndex < 0 {
		writeError(w, http.StatusBadRequest, "record_index must be a non-negative integer")
		return
	}
	field := r.PathValue("field")
	if field == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	var req UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var resp UpdateFieldResponse
	err = svc.Session.Do(func(s *review.Session) error {
		out, err := shell.Dispatch(s, shell.Intent{
			Kind:   shell.IntentUpdateField,
			Record: recordIndex,
			Field:  field,
			Value:  req.Value,
		})
		if err != nil {
			return err
		}
		resp.Edited = out.Edited
		if resp.Record, err = svc.Presenter.Record(s, recordIndex); err != nil {
			return err
		}
		rec, _ := s.Record(recordIndex)
		if page, ok := rec.SourcePage(); ok {
			resp.Page, _ = s.Status(page - 1)
		}
		return nil
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}

	svcctx.LoggerFrom(r.Context()).Info("field updated",
		"record_index", recordIndex,
		"field", field,
		"edited", resp.Edited,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (e *UpdateFieldEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <record_index> <field> <value>",
		Short: "Edit a field of a record",
		Long: `Edit a field of a record. The value is coerced to the type of the
original value: numbers must parse, an empty value clears the field.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := "/api/records/" + args[0] + "/fields/" + url.PathEscape(args[1])
			var resp UpdateFieldResponse
			if err := client.Put(cmd.Context(), path, UpdateFieldRequest{Value: args[2]}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
