package gotenberg

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/domain"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConvertToPDF_PassesThroughPDF(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "cv.pdf", "%PDF-1.4")

	c := New("http://gotenberg.invalid", dir)
	out, err := c.ConvertToPDF(t.Context(), src)
	require.NoError(t, err)
	assert.Equal(t, src, out)

	_, err = os.Stat(src)
	assert.NoError(t, err, "pass-through must not delete the source")
}

func TestConvertToPDF_RejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "cv.exe", "MZ")

	c := New("http://gotenberg.invalid", dir)
	_, err := c.ConvertToPDF(t.Context(), src)
	require.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, statErr := os.Stat(src)
	assert.NoError(t, statErr, "rejected files are not touched")
}

func TestConvertToPDF_ConvertsDocx(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "cv.docx", "fake docx body")

	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/forms/libreoffice/convert", r.URL.Path)
		f, hdr, err := r.FormFile("files")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		gotFilename = hdr.Filename
		_, _ = w.Write([]byte("%PDF-1.7 converted"))
	}))
	defer srv.Close()

	c := New(srv.URL, dir)
	out, err := c.ConvertToPDF(t.Context(), src)
	require.NoError(t, err)

	assert.Equal(t, "cv.docx", gotFilename)
	assert.True(t, strings.HasSuffix(out, ".pdf"))
	assert.Equal(t, dir, filepath.Dir(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 converted", string(data))

	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr), "source removed after conversion")
}

func TestConvertToPDF_ServerErrorRemovesSource(t *testing.T) {
	dir := t.TempDir()
	src := writeTemp(t, dir, "cv.doc", "fake doc body")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, dir)
	_, err := c.ConvertToPDF(t.Context(), src)
	require.Error(t, err)

	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr), "source removed even on failure")
}
