package endpoints

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/docreview/internal/api"
	"github.com/jackzampolin/docreview/internal/dataset"
	"github.com/jackzampolin/docreview/internal/review"
	"github.com/jackzampolin/docreview/internal/shell"
)

// ListPagesResponse is the response for listing pages.
type ListPagesResponse struct {
	Pages      []shell.PageItem `json:"pages"`
	TotalPages int              `json:"total_pages"`
}

// ListPagesEndpoint handles GET /api/pages.
type ListPagesEndpoint struct{}

var _ api.Endpoint = (*ListPagesEndpoint)(nil)

func (e *ListPagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pages", e.handler
}

func (e *ListPagesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List pages
//	@Description	List all pages with their review status
//	@Tags			pages
//	@Produce		json
//	@Success		200	{object}	ListPagesResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/pages [get]
func (e *ListPagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}
	var resp ListPagesResponse
	_ = svc.Session.Do(func(s *review.Session) error {
		resp.Pages = svc.Presenter.PageList(s)
		resp.TotalPages = len(resp.Pages)
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (e *ListPagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pages and their review status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListPagesResponse
			if err := client.Get(cmd.Context(), "/api/pages", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetPageEndpoint handles GET /api/pages/{page_num}.
type GetPageEndpoint struct{}

var _ api.Endpoint = (*GetPageEndpoint)(nil)

func (e *GetPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pages/{page_num}", e.handler
}

func (e *GetPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get page
//	@Description	Records of a page rendered as editable fields
//	@Tags			pages
//	@Produce		json
//	@Param			page_num	path		int	true	"Page number (1-indexed)"
//	@Success		200			{object}	shell.PageView
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/api/pages/{page_num} [get]
func (e *GetPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	index, err := pageIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var resp shell.PageView
	err = svc.Session.Do(func(s *review.Session) error {
		v, err := svc.Presenter.Page(s, index)
		resp = v
		return err
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *GetPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <page_num>",
		Short: "Show the records on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp shell.PageView
			if err := client.Get(cmd.Context(), "/api/pages/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// PageImageEndpoint handles GET /api/pages/{page_num}/image.
type PageImageEndpoint struct{}

var _ api.Endpoint = (*PageImageEndpoint)(nil)

func (e *PageImageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pages/{page_num}/image", e.handler
}

func (e *PageImageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get page image
//	@Description	The scanned image of a page
//	@Tags			pages
//	@Produce		image/png
//	@Produce		image/jpeg
//	@Param			page_num	path		int	true	"Page number (1-indexed)"
//	@Success		200			{file}		binary
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/api/pages/{page_num}/image [get]
func (e *PageImageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	index, err := pageIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	svc, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var page review.Page
	err = svc.Session.Do(func(s *review.Session) error {
		p, err := s.Page(index)
		page = p
		return err
	})
	if err != nil {
		writeReviewError(w, err)
		return
	}

	file, err := os.Open(page.ImageRef)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("image for page %d not found", index+1))
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", dataset.ImageContentType(page.ImageRef))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeContent(w, r, filepath.Base(page.ImageRef), fileInfo.ModTime(), file)
}

func (e *PageImageEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "image <page_num>",
		Short: "Download the image of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("page_num must be a number: %w", err)
			}
			client := api.NewClient(getServerURL())
			data, _, err := client.GetRaw(cmd.Context(), "/api/pages/"+args[0]+"/image")
			if err != nil {
				return err
			}
			if outputFile == "" {
				outputFile = "page_" + args[0] + ".img"
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return err
			}
			cmd.Println("Saved", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "Output file path")
	return cmd
}

// SelectPageEndpoint handles POST /api/pages/{page_num}/select.
type SelectPageEndpoint struct{}

var _ api.Endpoint = (*SelectPageEndpoint)(nil)

func (e *SelectPageEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/pages/{page_num}/select", e.handler
}

func (e *SelectPageEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Select page
//	@Description	Make a page the current page
//	@Tags			pages
//	@Produce		json
//	@Param			page_num	path		int	true	"Page number (1-indexed)"
//	@Success		200			{object}	NavigationResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		503			{object}	ErrorResponse
//	@Router			/api/pages/{page_num}/select [post]
func (e *SelectPageEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	index, err := pageIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dispatch(w, r, shell.Intent{Kind: shell.IntentSelectPage, Page: index})
}

func (e *SelectPageEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "select <page_num>",
		Short: "Jump to a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp NavigationResponse
			if err := client.Post(cmd.Context(), "/api/pages/"+args[0]+"/select", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
