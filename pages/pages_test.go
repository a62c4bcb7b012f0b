package pages_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/backend/pages"
	"github.com/modelboard/backend/srvcerror"
)

func TestRenderMarkdownPage(t *testing.T) {
	dir := t.TempDir()
	md := "# Contest Rules\n\nOne submission counts.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.md"), []byte(md), 0o644))

	srvc := pages.NewPagesSrvc(dir, []string{"rules", "prizes"})

	html, err := srvc.Render("rules")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Contest Rules")
}

func TestRenderUnknownPage(t *testing.T) {
	srvc := pages.NewPagesSrvc(t.TempDir(), []string{"rules"})

	_, err := srvc.Render("secrets")
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, pages.ErrCodePageNotFound, srvcErr.ErrorCode())
}

func TestRenderConfiguredButMissingFile(t *testing.T) {
	srvc := pages.NewPagesSrvc(t.TempDir(), []string{"rules"})

	_, err := srvc.Render("rules")
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, pages.ErrCodePageNotFound, srvcErr.ErrorCode())
}
