// Package export writes a completed proposal document in one of several
// formats. The plain text format is the canonical download; the others carry
// the same answers.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Harshal279/chatbot/internal/summary"
)

// Exporter defines the interface for all export formats.
type Exporter interface {
	Export(doc summary.Document, w io.Writer) error
	Extension() string
	MIMEType() string
}

// Formats lists the accepted --format values.
var Formats = []string{"txt", "md", "json", "yaml"}

// NewExporter creates a new exporter based on format.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "txt", "text":
		return &TextExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
	}
}
