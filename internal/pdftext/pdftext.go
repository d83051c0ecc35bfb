// Package pdftext extracts plain text from PDF bytes behind a narrow
// interface so the extraction library stays swappable.
package pdftext

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor turns PDF bytes into plain text.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// Reader is the default Extractor, backed by ledongthuc/pdf.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ExtractText returns the concatenated plain text of every page.
func (r *Reader) ExtractText(data []byte) (string, error) {
	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var buf bytes.Buffer
	reader, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}
	return buf.String(), nil
}
