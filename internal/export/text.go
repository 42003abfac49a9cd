package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/Harshal279/chatbot/internal/summary"
)

// RuleWidth is the width of the "=" rule under the title.
const RuleWidth = 50

// TextExporter writes the title, a rule, a blank line, the generation date
// and then one "Label: Value" line per answer.
type TextExporter struct{}

// Export writes doc as plain text.
func (e *TextExporter) Export(doc summary.Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(doc.Title + "\n")
	_, _ = bw.WriteString(strings.Repeat("=", RuleWidth) + "\n\n")
	_, _ = bw.WriteString("Generated: " + doc.Date() + "\n")
	for _, line := range doc.Lines() {
		_, _ = bw.WriteString(line + "\n")
	}
	return bw.Flush()
}

// Extension returns the file extension for this format.
func (e *TextExporter) Extension() string { return "txt" }

// MIMEType returns the media type of the output.
func (e *TextExporter) MIMEType() string { return "text/plain" }
