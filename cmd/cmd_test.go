package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFetchAndIndex(t *testing.T) {
	page := "<html><head><title>Module structure</title></head><body><article><h1>Module structure</h1><p>" +
		strings.Repeat("Every module is split into regions. ", 10) + "</p></article></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/std/453/" {
			fmt.Fprint(w, page)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "content")
	base := srv.URL + "/std/%d/"

	out, err := execute(t, "", "fetch", "453", "999", "--output_dir", dir, "--base_url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "[1/2] std/453 ✓ std-453.md")
	assert.Contains(t, out, "[2/2] std/999 ✗ HTTP 404")
	assert.Contains(t, out, "Done: 1 written, 0 skipped, 1 failed (total: 2)")
	assert.FileExists(t, filepath.Join(dir, "std-453.md"))

	out, err = execute(t, "", "index", "--output_dir", dir, "--base_url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "(1 entries)")

	data, err := os.ReadFile(filepath.Join(dir, "lookup.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Module structure"`)
	assert.Contains(t, string(data), `"localFile": "std-453.md"`)
}

func TestFetch_RejectsInvalidIDs(t *testing.T) {
	_, err := execute(t, "", "fetch", "453", "abc", "--output_dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid standard id "abc"`)
}

func TestConvert_Stdin(t *testing.T) {
	out, err := execute(t, "<h2>Title</h2><p>Body</p>", "convert", "-")
	require.NoError(t, err)
	assert.Equal(t, "### Title\nBody\n", out)
}

func TestCatalog_YAML(t *testing.T) {
	out, err := execute(t, "", "catalog", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sections:")
	assert.Contains(t, out, "Module formatting")
}
