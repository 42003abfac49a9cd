package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Harshal279/chatbot/internal/summary"
)

// YAMLExporter exports the document in YAML format.
type YAMLExporter struct{}

// Export writes doc as YAML.
func (e *YAMLExporter) Export(doc summary.Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRecord(doc)); err != nil {
		return err
	}
	return enc.Close()
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string { return "yaml" }

// MIMEType returns the media type of the output.
func (e *YAMLExporter) MIMEType() string { return "application/yaml" }
