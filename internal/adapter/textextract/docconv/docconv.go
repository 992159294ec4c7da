// Package docconv extracts text from stored CV documents and packages them
// as attachments for the scoring engine.
package docconv

import (
	"fmt"
	"os"
	"path/filepath"

	"code.sajari.com/docconv"
	"github.com/gabriel-vasile/mimetype"

	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/pkg/textx"
)

// Extractor implements domain.TextExtractor and domain.AttachmentLoader on
// local files.
type Extractor struct{}

// New constructs an Extractor.
func New() *Extractor { return &Extractor{} }

// ExtractText returns the document's text layer, sanitized and trimmed. An
// image-only PDF yields an empty string, which is a valid result, not an
// error.
func (e *Extractor) ExtractText(_ domain.Context, path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("op=textextract: %w", err)
	}
	return textx.SanitizeText(res.Body), nil
}

// LoadAttachment reads the file and sniffs its MIME type from content.
func (e *Extractor) LoadAttachment(path string) (domain.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("op=textextract.attachment: %w", err)
	}
	return domain.Attachment{
		Filename: filepath.Base(path),
		MIME:     mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}
