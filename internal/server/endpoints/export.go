package endpoints

import (
	"fmt"
	"mime"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/export"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// SaveExportResponse reports where an export was written.
type SaveExportResponse struct {
	Kind   review.ExportKind `json:"kind"`
	Format export.Format     `json:"format"`
	Path   string            `json:"path"`
}

// project builds the export document for the {kind} path value under the
// session lock. It also returns the document name for the filename.
func project(w http.ResponseWriter, r *http.Request) (review.Document, string, bool) {
	kind, err := review.ParseExportKind(r.PathValue("kind"))
	if err != nil {
		writeReviewError(w, err)
		return nil, "", false
	}
	svc, ok := sessionServices(w, r)
	if !ok {
		return nil, "", false
	}

	var (
		doc  review.Document
		name string
	)
	err = svc.Session.Do(func(s *review.Session) error {
		out, err := shell.Dispatch(s, shell.Intent{Kind: shell.IntentRequestExport, Export: kind})
		if err != nil {
			return err
		}
		doc, name = out.Document, s.DocumentName()
		return nil
	})
	if err != nil {
		writeReviewError(w, err)
		return nil, "", false
	}
	return doc, name, true
}

// DownloadExportEndpoint handles GET /api/export/{kind}.
type DownloadExportEndpoint struct{}

var _ api.Endpoint = (*DownloadExportEndpoint)(nil)

func (e *DownloadExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/export/{kind}", e.handler
}

func (e *DownloadExportEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download export
//	@Description	Build an export of the current state: approved, all or changes
//	@Tags			export
//	@Produce		json
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			kind	path		string	true	"Export kind"	Enums(approved, all, changes)
//	@Param			format	query		string	false	"File format"	Enums(json, xlsx)
//	@Success		200		{file}		binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/export/{kind} [get]
func (e *DownloadExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeReviewError(w, err)
		return
	}
	doc, name, ok := project(w, r)
	if !ok {
		return
	}

	data, err := export.Render(doc, format)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	filename := export.Filename(name, doc.Kind(), format)
	svcctx.LoggerFrom(r.Context()).Info("export downloaded",
		"kind", doc.Kind(),
		"format", format,
		"bytes", len(data),
	)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (e *DownloadExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	var format, outputFile string
	cmd := &cobra.Command{
		Use:   "download <approved|all|changes>",
		Short: "Download an export to a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := "/api/export/" + args[0]
			if format != "" {
				path += "?format=" + format
			}
			data, header, err := client.GetRaw(cmd.Context(), path)
			if err != nil {
				return err
			}
			if outputFile == "" {
				outputFile = attachmentName(header.Get("Content-Disposition"), args[0])
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			cmd.Println("Saved", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "File format: json or xlsx (default json)")
	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "Output file path (default: server-suggested name)")
	return cmd
}

// attachmentName returns the filename parameter of a Content-Disposition
// header, or fallback.json.
func attachmentName(disposition, fallback string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return fallback + ".json"
}

// SaveExportEndpoint handles POST /api/export/{kind}.
type SaveExportEndpoint struct{}

var _ api.Endpoint = (*SaveExportEndpoint)(nil)

func (e *SaveExportEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/export/{kind}", e.handler
}

func (e *SaveExportEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Save export
//	@Description	Write an export into the server's exports directory
//	@Tags			export
//	@Produce		json
//	@Param			kind	path		string	true	"Export kind"	Enums(approved, all, changes)
//	@Param			format	query		string	false	"File format (default from config)"	Enums(json, xlsx)
//	@Success		200		{object}	SaveExportResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/export/{kind} [post]
func (e *SaveExportEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var format export.Format
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := export.ParseFormat(q)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		format = f
	}

	writer := svcctx.ExportsFrom(r.Context())
	if writer == nil {
		writeError(w, http.StatusServiceUnavailable, "exports directory not configured")
		return
	}

	doc, name, ok := project(w, r)
	if !ok {
		return
	}
	if format == "" {
		format = writer.Format()
	}

	path, err := writer.Save(doc, name, format)
	if err != nil {
		writeReviewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveExportResponse{Kind: doc.Kind(), Format: format, Path: path})
}

func (e *SaveExportEndpoint) Command(getServerURL func() string) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "save <approved|all|changes>",
		Short: "Save an export into the server's exports directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := "/api/export/" + args[0]
			if format != "" {
				path += "?format=" + format
			}
			var resp SaveExportResponse
			if err := client.Post(cmd.Context(), path, nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "File format: json or xlsx (default from server config)")
	return cmd
}
