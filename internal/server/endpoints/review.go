package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/shell"
	"github.com/jackzampolin/docreview/internal/svcctx"
)

// NavigationResponse reports the session state after a navigation or
// status intent.
type NavigationResponse struct {
	Moved   bool          `json:"moved"`
	Summary shell.Summary `json:"summary"`
}

// dispatch applies an intent under the session lock and answers with the
// resulting summary.
func dispatch(w http.ResponseWriter, r *http.Request, in shell.Intent) {
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var resp NavigationResponse
	err := svc.Session.Do(func(s *review.Session) error {
		out, err := shell.Dispatch(s, in)
		if err != nil {
			return err
		}
		resp.Moved = out.Moved
		resp.Summary = svc.Presenter.Summary(s)
		return nil
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}

	svcctx.LoggerFrom(r.Context()).Info("review intent",
		"intent", in.Kind,
		"current_page", resp.Summary.CurrentPage,
		"approved", resp.Summary.Approved,
		"total", resp.Summary.Total,
	)
	writeJSON(w, http.StatusOK, resp)
}

// navigationCommand builds a CLI command that POSTs to path and prints the
// summary.
func navigationCommand(getServerURL func() string, use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp NavigationResponse
			if err := client.Post(cmd.Context(), path, nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ReviewStatusEndpoint handles GET /api/review.
type ReviewStatusEndpoint struct{}

var _ api.Endpoint = (*ReviewStatusEndpoint)(nil)

func (e *ReviewStatusEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review", e.handler
}

func (e *ReviewStatusEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Review status
//	@Description	Document, current page and approval progress of the session
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	shell.Summary
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review [get]
func (e *ReviewStatusEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}
	var resp shell.Summary
	_ = svc.Session.Do(func(s *review.Session) error {
		resp = svc.Presenter.Summary(s)
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (e *ReviewStatusEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show review progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp shell.Summary
			if err := client.Get(cmd.Context(), "/api/review", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ApproveEndpoint handles POST /api/review/approve.
type ApproveEndpoint struct{}

var _ api.Endpoint = (*ApproveEndpoint)(nil)

func (e *ApproveEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review/approve", e.handler
}

func (e *ApproveEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Approve and advance
//	@Description	Approve the current page and move to the next one if there is one
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	NavigationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/approve [post]
func (e *ApproveEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, shell.Intent{Kind: shell.IntentApproveAndNext})
}

func (e *ApproveEndpoint) Command(getServerURL func() string) *cobra.Command {
	return navigationCommand(getServerURL, "approve", "Approve the current page and advance", "/api/review/approve")
}

// RevertEndpoint handles POST /api/review/revert.
type RevertEndpoint struct{}

var _ api.Endpoint = (*RevertEndpoint)(nil)

func (e *RevertEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review/revert", e.handler
}

func (e *RevertEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Revert current page
//	@Description	Restore the original records of the current page and mark it pending
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	NavigationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/revert [post]
func (e *RevertEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, shell.Intent{Kind: shell.IntentRevertCurrentPage})
}

func (e *RevertEndpoint) Command(getServerURL func() string) *cobra.Command {
	return navigationCommand(getServerURL, "revert", "Revert the current page to the original data", "/api/review/revert")
}

// NextPageEndpoint handles POST /api/review/next.
type NextPageEndpoint struct{}

var _ api.Endpoint = (*NextPageEndpoint)(nil)

func (e *NextPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review/next", e.handler
}

func (e *NextPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Next page
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	NavigationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/next [post]
func (e *NextPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, shell.Intent{Kind: shell.IntentNextPage})
}

func (e *NextPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return navigationCommand(getServerURL, "next", "Move to the next page", "/api/review/next")
}

// PrevPageEndpoint handles POST /api/review/prev.
type PrevPageEndpoint struct{}

var _ api.Endpoint = (*PrevPageEndpoint)(nil)

func (e *PrevPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/review/prev", e.handler
}

func (e *PrevPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Previous page
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	NavigationResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/prev [post]
func (e *PrevPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, shell.Intent{Kind: shell.IntentPrevPage})
}

func (e *PrevPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return navigationCommand(getServerURL, "prev", "Move to the previous page", "/api/review/prev")
}

// FinishEndpoint handles GET /api/review/finish.
type FinishEndpoint struct{}

var _ api.Endpoint = (*FinishEndpoint)(nil)

func (e *FinishEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/review/finish", e.handler
}

func (e *FinishEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Finish review
//	@Description	Reports pending pages so the client can confirm before exporting
//	@Tags			review
//	@Produce		json
//	@Success		200	{object}	shell.FinishView
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/review/finish [get]
func (e *FinishEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}
	var resp shell.FinishView
	_ = svc.Session.Do(func(s *review.Session) error {
		resp = svc.Presenter.Finish(s)
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (e *FinishEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Check pending pages before exporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp shell.FinishView
			if err := client.Get(cmd.Context(), "/api/review/finish", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
