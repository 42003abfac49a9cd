package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Harshal279/chatbot/internal/summary"
)

// MarkdownExporter writes the document grouped by phase.
type MarkdownExporter struct{}

// Export writes doc as Markdown.
func (e *MarkdownExporter) Export(doc summary.Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "# %s\n\n", doc.Title)
	_, _ = fmt.Fprintf(bw, "**Client:** %s  \n", escapeMarkdown(doc.Company))
	_, _ = fmt.Fprintf(bw, "**Generated:** %s\n", doc.Date())

	for _, g := range doc.Phases {
		_, _ = fmt.Fprintf(bw, "\n## Phase %d: %s\n\n", g.Phase, g.Name)
		for _, it := range g.Items {
			_, _ = fmt.Fprintf(bw, "- **%s:** %s\n", it.Label, escapeMarkdown(it.Value.String()))
		}
	}
	return bw.Flush()
}

// escapeMarkdown keeps a free-text answer inside its list item.
func escapeMarkdown(text string) string {
	r := strings.NewReplacer("\r\n", "  \n  ", "\n", "  \n  ", "*", `\*`, "_", `\_`, "`", "\\`")
	return r.Replace(strings.TrimRight(text, "\r\n"))
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string { return "md" }

// MIMEType returns the media type of the output.
func (e *MarkdownExporter) MIMEType() string { return "text/markdown" }
