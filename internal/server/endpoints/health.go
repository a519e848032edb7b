package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/export"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// HealthResponse is the response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
	Document  string `json:"document,omitempty"`
}

// HealthEndpoint handles GET /health.
type HealthEndpoint struct{}

var _ api.Endpoint = (*HealthEndpoint)(nil)

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/health", e.handler
}

func (e *HealthEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Health check
//	@Description	Reports that the server is up and which document it is reviewing
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if ss := svcctx.SessionFrom(r.Context()); ss != nil {
		_ = ss.Do(func(s *review.Session) error {
			resp.SessionID = s.ID()
			resp.Document = s.DocumentName()
			return nil
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	var wait time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if wait > 0 {
				if err := client.WaitReady(cmd.Context(), wait); err != nil {
					return err
				}
			}
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/health", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "Wait up to this long for the server to come up")
	return cmd
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeReviewError maps review and export errors to HTTP status codes.
func writeReviewError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, review.ErrPageIndexOutOfRange),
		errors.Is(err, review.ErrRecordIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, review.ErrInvalidValue),
		errors.Is(err, review.ErrProtectedField),
		errors.Is(err, review.ErrUnknownExportKind),
		errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pageIndex parses the 1-based {page_num} path value into a page index.
func pageIndex(r *http.Request) (int, error) {
	n, err := strconv.Atoi(r.PathValue("page_num"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page_num must be a positive integer")
	}
	return n - 1, nil
}

// sessionServices returns the session and presenter, writing a 503 when
// either is missing.
func sessionServices(w http.ResponseWriter, r *http.Request) (*svcctx.Services, bool) {
	svc := svcctx.ServicesFrom(r.Context())
	if svc == nil || svc.Session == nil || svc.Presenter == nil {
		writeError(w, http.StatusServiceUnavailable, "review session not loaded")
		return nil, false
	}
	return svc, true
}
