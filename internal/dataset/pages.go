package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackzampolin/docreview/internal/review"
)

// pageImageGroups lists page image extensions in discovery order. PNG pages
// come first, then JPEG pages; each group is sorted by file name.
var pageImageGroups = [][]string{
	{".png"},
	{".jpg", ".jpeg"},
}

// DiscoverPages finds page_*.png and page_*.jpg images in dir and returns
// them as pages named "Page N".
func DiscoverPages(dir string) ([]review.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	groups := make([][]string, len(pageImageGroups))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "page_") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		for gi, exts := range pageImageGroups {
			if contains(exts, ext) {
				groups[gi] = append(groups[gi], name)
				break
			}
		}
	}

	var pages []review.Page
	for _, names := range groups {
		sort.Strings(names)
		for _, name := range names {
			n := len(pages) + 1
			pages = append(pages, review.Page{
				Index:       n - 1,
				DisplayName: fmt.Sprintf("Page %d", n),
				ImageRef:    filepath.Join(dir, name),
			})
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPages, dir)
	}
	return pages, nil
}

// ImageContentType returns the MIME type of a page image reference.
func ImageContentType(ref string) string {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
