package pdfwriter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Summary is what Inspect reads back from a rendered purchase order.
type Summary struct {
	// Pages is the page count.
	Pages int

	// Text holds the text of each page, one line per baseline.
	Text []string
}

// Contains reports whether any page contains s.
func (s *Summary) Contains(text string) bool {
	for _, page := range s.Text {
		if strings.Contains(page, text) {
			return true
		}
	}
	return false
}

// Inspect reads a PDF file and extracts its page count and text.
func Inspect(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return InspectBytes(data)
}

// InspectBytes is Inspect for an in-memory PDF.
func InspectBytes(data []byte) (*Summary, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	summary := &Summary{Pages: r.NumPage()}
	for i := 1; i <= summary.Pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			summary.Text = append(summary.Text, "")
			continue
		}
		summary.Text = append(summary.Text, pageText(p.Content().Text))
	}
	return summary, nil
}

// pageText joins text fragments, starting a new line whenever the baseline
// moves.
func pageText(texts []pdf.Text) string {
	var b strings.Builder
	lastY := 0.0
	for i, t := range texts {
		if i > 0 && t.Y != lastY {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
		lastY = t.Y
	}
	return b.String()
}
