// Package pages serves the contest's static markdown documents
// (description, evaluation, rules, prizes) rendered to HTML.
package pages

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/modelboard/backend/srvcerror"
)

const ErrCodePageNotFound = "page_not_found"

func ErrPageNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePageNotFound,
		"Page not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

type PagesSrvc struct {
	contentDir string
	known      map[string]struct{}
	md         goldmark.Markdown
}

func NewPagesSrvc(contentDir string, pages []string) *PagesSrvc {
	known := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		known[p] = struct{}{}
	}
	return &PagesSrvc{
		contentDir: contentDir,
		known:      known,
		md:         goldmark.New(),
	}
}

// Pages returns the configured page names, for navigation.
func (s *PagesSrvc) Pages() []string {
	res := make([]string, 0, len(s.known))
	for p := range s.known {
		res = append(res, p)
	}
	return res
}

// Render reads <contentDir>/<page>.md and returns it as HTML. Only pages
// from the configured list are served, so the page name never reaches the
// filesystem unchecked.
func (s *PagesSrvc) Render(page string) (string, error) {
	if _, ok := s.known[page]; !ok {
		return "", ErrPageNotFound()
	}

	raw, err := os.ReadFile(filepath.Join(s.contentDir, page+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrPageNotFound().SetDebug(err)
		}
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to read page %q: %w", page, err))
	}

	var buf bytes.Buffer
	if err := s.md.Convert(raw, &buf); err != nil {
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to render page %q: %w", page, err))
	}

	return buf.String(), nil
}
