// Package gotenberg normalizes uploaded office documents to PDF through a
// Gotenberg conversion service.
package gotenberg

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireline/hireline/internal/domain"
)

// Client implements domain.FileConverter against a Gotenberg server.
type Client struct {
	baseURL    string
	filesDir   string
	httpClient *http.Client
}

// New constructs a Client. Converted PDFs land in filesDir under random names.
func New(baseURL, filesDir string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		filesDir:   filesDir,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

var allowedExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".rtf":  true,
}

// ConvertToPDF returns the path of a PDF rendition of the file. PDFs pass
// through untouched; other allowed formats go through LibreOffice
// conversion, and the source file is removed whether conversion succeeds or
// fails. Disallowed extensions are rejected before any upload.
func (c *Client) ConvertToPDF(ctx domain.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExts[ext] {
		return "", fmt.Errorf("%w: extension %q", domain.ErrUnsupportedMedia, ext)
	}
	if ext == ".pdf" {
		return path, nil
	}
	out, err := c.convert(ctx, path)
	if rmErr := os.Remove(path); rmErr != nil {
		slog.Warn("source file cleanup failed",
			slog.String("path", path),
			slog.Any("error", rmErr))
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) convert(ctx domain.Context, path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("op=convert.open: %w", err)
	}
	defer func() { _ = src.Close() }()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("op=convert.form: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", fmt.Errorf("op=convert.form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("op=convert.form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forms/libreoffice/convert", &body)
	if err != nil {
		return "", fmt.Errorf("op=convert.request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("op=convert.request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("op=convert.request: unexpected status %d", resp.StatusCode)
	}

	outPath := filepath.Join(c.filesDir, uuid.NewString()+".pdf")
	dst, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("op=convert.write: %w", err)
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		_ = dst.Close()
		_ = os.Remove(outPath)
		return "", fmt.Errorf("op=convert.write: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(outPath)
		return "", fmt.Errorf("op=convert.write: %w", err)
	}
	return outPath, nil
}
